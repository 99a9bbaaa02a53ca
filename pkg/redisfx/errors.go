package redisfx

import "errors"

var ErrAddressRequired = errors.New("redis address or url is required")
