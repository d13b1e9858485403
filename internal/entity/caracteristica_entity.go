package entity

// Caracteristica is a named amenity tag ("Piscina", "Churrasqueira", ...)
// shared by any number of properties. Nome is unique case-insensitively.
type Caracteristica struct {
	Id   uint
	Nome string
}
