package contributions

import "errors"

var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrWorkNotFound         = errors.New("work not found")
	ErrWorkFull             = errors.New("work has reached its contribution limit")
)
