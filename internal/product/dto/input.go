package dto

// Fields accepted by UpdateProductInput.Field.
const (
	FieldName  = "name"
	FieldPrice = "price"
)

type CreateProductInput struct {
	Name  string
	Price string // decimal text, e.g. "2.50"
}

// UpdateProductInput changes a single field, the way the product editor
// commits one cell at a time.
type UpdateProductInput struct {
	ID    string
	Field string
	Value string
}
