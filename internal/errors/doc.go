// Package errors provides structured errors for habitica-actions.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.InvalidArgumentf("unknown action %q", name)
//	err := errors.Remote(resp.StatusCode, "NotAuthorized: missing credentials")
//
// Wrapping keeps the code of an existing *Error, otherwise it is INTERNAL:
//
//	if err := c.do(ctx, req, &out); err != nil {
//	    return nil, errors.Wrap(err, "failed to fetch user")
//	}
//
// Failures of the remote service are mapped from their HTTP status with
// FromHTTPStatus, so callers can branch on IsUnauthenticated or IsUnavailable
// without looking at transport details.
//
// Configuration checks go through a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("user.id", cfg.User.ID, vb)
//	errors.ValidateNonNegative("thresholds.health", cfg.Thresholds.Health, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Outcomes such as "below threshold" or "out of eggs" are not errors and are
// never reported through this package.
package errors
