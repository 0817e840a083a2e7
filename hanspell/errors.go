package hanspell

import (
	"errors"
	"fmt"

	"github.com/Alfex4936/hanspell/internal/model"
)

var (
	// ErrNoDocument is returned when there is no text to check.
	ErrNoDocument = errors.New("hanspell: 먼저 검사할 문서를 선택하세요")

	// ErrNoSpeller means no client is registered for a requested service.
	ErrNoSpeller = errors.New("hanspell: no speller for service")
)

// ServiceError names the remote service a check failed on.
type ServiceError struct {
	Service model.Service
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s 서비스 접속 오류로 맞춤법 교정에 실패했습니다: %v", e.Service.Label(), e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
