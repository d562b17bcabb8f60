package model

import "safar/shared/model"

const (
	TableName  = "handling_companies"
	EntityName = "handling_company"

	FieldID      = "id"
	FieldName    = "name"
	FieldPICName = "pic_name"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldAddress = "address"
)

// HandlingCompany is a ground-services vendor contracted per group.
type HandlingCompany struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	PICName *string `db:"pic_name"`
	Phone   *string `db:"phone"`
	Email   *string `db:"email"`
	Address *string `db:"address"`
	model.Metadata
}
