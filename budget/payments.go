package budget

import (
	"context"
	"fmt"
)

const (
	manualPaymentsPath = "/manual-payments/"
	mpesaPaymentsPath  = "/mpesa-payments/"
)

func pledgePaymentsPath(pledgeID int64) string {
	return fmt.Sprintf("%s%d/manual-payments/", pledgesPath, pledgeID)
}

func (c *Client) ListManualPayments(ctx context.Context, opts ListOptions) (*Page[ManualPayment], error) {
	return list[ManualPayment](ctx, c, manualPaymentsPath, opts.query())
}

func (c *Client) ListPledgePayments(ctx context.Context, pledgeID int64) (*Page[ManualPayment], error) {
	return list[ManualPayment](ctx, c, pledgePaymentsPath(pledgeID), nil)
}

// CreateManualPayment records a payment against pledgeID.
func (c *Client) CreateManualPayment(ctx context.Context, pledgeID int64, input ManualPaymentInput) (*ManualPayment, error) {
	if input.Pledge == nil {
		input.Pledge = &pledgeID
	}
	var out ManualPayment
	if err := c.post(ctx, pledgePaymentsPath(pledgeID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetManualPayment(ctx context.Context, id int64) (*ManualPayment, error) {
	var out ManualPayment
	if err := c.get(ctx, itemPath(manualPaymentsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateManualPayment replaces the payment.
func (c *Client) UpdateManualPayment(ctx context.Context, id int64, input ManualPaymentInput) (*ManualPayment, error) {
	var out ManualPayment
	if err := c.put(ctx, itemPath(manualPaymentsPath, id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteManualPayment(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(manualPaymentsPath, id))
}

func (c *Client) ListMpesaPayments(ctx context.Context, opts ListOptions) (*Page[MpesaPayment], error) {
	return list[MpesaPayment](ctx, c, mpesaPaymentsPath, opts.query())
}

func (c *Client) CreateMpesaPayment(ctx context.Context, input MpesaPaymentInput) (*MpesaPayment, error) {
	var out MpesaPayment
	if err := c.post(ctx, mpesaPaymentsPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMpesaPayment(ctx context.Context, id int64) (*MpesaPayment, error) {
	var out MpesaPayment
	if err := c.get(ctx, itemPath(mpesaPaymentsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMpesaPayment replaces the payment.
func (c *Client) UpdateMpesaPayment(ctx context.Context, id int64, input MpesaPaymentInput) (*MpesaPayment, error) {
	var out MpesaPayment
	if err := c.put(ctx, itemPath(mpesaPaymentsPath, id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMpesaPayment(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(mpesaPaymentsPath, id))
}
