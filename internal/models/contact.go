package models

type Contact struct {
	Base
	Email   string `json:"email" validate:"required,email" desc:"The email of a contact" example:"john.doe@example.com"`
	Phone   string `json:"phone" validate:"required" desc:"The phone number of a contact" example:"+1234567890"`
	Address string `json:"address" validate:"required" desc:"The address of a contact" example:"123 Main St, Anytown, USA"`
}
