package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrAddressIsRequired       = errors.New("delivery address is required")
	ErrAmountIsInvalid         = errors.New("amount must be greater than 0")
)

// CreateOrderCommand represents a request to create a new delivery order.
// Encapsulates the customer details, the amount, and the payment method.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	amount, _ := kernel.NewMoney(50000)
//	cmd, err := NewCreateOrderCommand(orderID, "Asha Rao", "+91 98450 12345",
//	    "14 MG Road, Bengaluru", amount, order.CashOnDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting driver assignment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	address       string
	amount        kernel.Money
	payment       order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID, amount, and payment method are valid and the
// customer fields are not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	address string,
	amount kernel.Money,
	payment order.PaymentMethod,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerPhone(customerPhone),
		orderCommand.setAddress(address),
		orderCommand.setAmount(amount),
		orderCommand.setPayment(payment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Address returns the delivery destination address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Amount returns the order's monetary amount.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Payment returns the order's payment method.
func (c CreateOrderCommand) Payment() order.PaymentMethod {
	return c.payment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}
