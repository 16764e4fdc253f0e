package core

// Entity identifies a row across the component tables, 0 is never issued
type Entity uint32
