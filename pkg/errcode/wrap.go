package errcode

import "errors"

// Error 携带错误类别的包装错误
type Error struct {
	Err    error
	Reason Reason
}

func (e Error) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// Wrap 给错误附加类别(err 为 nil 或已带类别时原样返回)
func Wrap(err error, reason Reason) error {
	if err == nil {
		return nil
	}
	var ce Error
	if errors.As(err, &ce) {
		return err
	}
	return Error{Err: err, Reason: reason}
}

// Of 提取错误链中的类别，没有则返回 ReasonUnknown
func Of(err error) Reason {
	if err == nil {
		return ReasonUnknown
	}
	var ce Error
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return ReasonUnknown
}

// Has 判断错误是否属于给定类别
func Has(err error, reason Reason) bool {
	return Of(err) == reason
}
