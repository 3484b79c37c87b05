package budget

import (
	"context"
)

const (
	serviceProvidersPath = "/service-providers/"
	vendorPaymentsPath   = "/vendor-payments/"
)

func (c *Client) ListServiceProviders(ctx context.Context, opts ListOptions) (*Page[ServiceProvider], error) {
	return list[ServiceProvider](ctx, c, serviceProvidersPath, opts.query())
}

func (c *Client) CreateServiceProvider(ctx context.Context, input ServiceProviderInput) (*ServiceProvider, error) {
	var out ServiceProvider
	if err := c.post(ctx, serviceProvidersPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetServiceProvider(ctx context.Context, id int64) (*ServiceProvider, error) {
	var out ServiceProvider
	if err := c.get(ctx, itemPath(serviceProvidersPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateServiceProvider(ctx context.Context, id int64, fields Patch) (*ServiceProvider, error) {
	var out ServiceProvider
	if err := c.patch(ctx, itemPath(serviceProvidersPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteServiceProvider(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(serviceProvidersPath, id))
}

func (c *Client) ListVendorPayments(ctx context.Context, opts ListOptions) (*Page[VendorPayment], error) {
	return list[VendorPayment](ctx, c, vendorPaymentsPath, opts.query())
}

func (c *Client) CreateVendorPayment(ctx context.Context, input VendorPaymentInput) (*VendorPayment, error) {
	var out VendorPayment
	if err := c.post(ctx, vendorPaymentsPath, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVendorPayment(ctx context.Context, id int64) (*VendorPayment, error) {
	var out VendorPayment
	if err := c.get(ctx, itemPath(vendorPaymentsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVendorPayment(ctx context.Context, id int64, fields Patch) (*VendorPayment, error) {
	var out VendorPayment
	if err := c.patch(ctx, itemPath(vendorPaymentsPath, id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVendorPayment(ctx context.Context, id int64) error {
	return c.delete(ctx, itemPath(vendorPaymentsPath, id))
}
