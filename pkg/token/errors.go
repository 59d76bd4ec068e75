package token

import "fmt"

type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return "token config error: " + e.Msg }

type ErrInvalidToken struct{ Err error }

func (e ErrInvalidToken) Error() string { return fmt.Sprintf("invalid token: %v", e.Err) }
func (e ErrInvalidToken) Unwrap() error { return e.Err }

type ErrExpiredToken struct{ Err error }

func (e ErrExpiredToken) Error() string { return fmt.Sprintf("expired token: %v", e.Err) }
func (e ErrExpiredToken) Unwrap() error { return e.Err }
