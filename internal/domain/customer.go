package domain

type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone string) Customer {
	return Customer{
		name:  name,
		phone: phone,
	}
}

func NewCustomerWithEmail(name, phone, email string) Customer {
	return Customer{
		name:  name,
		phone: phone,
		email: email,
	}
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

// Email returns an empty string when the customer has no email address.
func (c Customer) Email() string {
	return c.email
}

func (c Customer) HasEmail() bool {
	return c.email != ""
}
