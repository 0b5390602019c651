package productcontroller

// ProductInput carries the writable product fields. Pointers distinguish
// "absent" from "zero" so updates only touch the fields the caller sent.
type ProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}
