package core

// Entity is a unique identifier for a world entity
// Zero is never assigned and marks "no entity"
type Entity uint64
