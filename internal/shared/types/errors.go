package types

import "errors"

var (
	ErrMissingColumn     = errors.New("required column not found in dataset")
	ErrInvalidValue      = errors.New("invalid value in dataset")
	ErrEmptyDataset      = errors.New("dataset has no rows")
	ErrUnsupportedSource = errors.New("unsupported dataset location")
	ErrTotalsMismatch    = errors.New("cnt does not equal casual + registered")
	ErrUnsupportedChart  = errors.New("unsupported chart kind or format")
	ErrUnknownProfile    = errors.New("AWS profile not found in shared configuration")
)
