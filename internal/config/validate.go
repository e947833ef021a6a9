package config

import "errors"

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Booking.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Outbox == nil || !c.Outbox.Disabled {
		if err := c.Redis.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
