package ElasticStreaming

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrDomain           = errors.New("parameter outside the model domain")
	ErrNumericalFailure = errors.New("numerical failure")
)
