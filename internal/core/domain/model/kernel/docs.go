// Package kernel provides the value objects shared by the order and inventory
// models: UUID identifiers and decimal Money.
package kernel
