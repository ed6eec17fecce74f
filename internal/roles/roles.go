package roles

import (
	"fmt"

	"drezzle/internal/apperrors"
)

type Role string

const (
	Listener Role = "listener"
	Creator  Role = "creator"
	Expert   Role = "expert"
	Label    Role = "label"
	Admin    Role = "admin"
)

type BadgeStatus string

const (
	BadgePending  BadgeStatus = "pending"
	BadgeApproved BadgeStatus = "approved"
	BadgeRejected BadgeStatus = "rejected"
)

// State - состояние ролей пользователя: заявленная роль, действующая роль
// и статус проверки. Все переходы идут через NewState/Approve/Reject.
type State struct {
	Declared Role
	Verified Role
	Badge    BadgeStatus
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Listener, Creator, Expert, Label, Admin:
		return Role(s), nil
	}
	return "", fmt.Errorf("неизвестная роль %q: %w", s, apperrors.ErrInvalidArgument)
}

// NewState возвращает начальное состояние ролей при регистрации.
// Expert до проверки понижается до listener, label сразу действует как
// label, но помечается на проверку админом. Роль admin при регистрации
// недоступна, админы заводятся напрямую в хранилище.
func NewState(declared Role) (State, error) {
	switch declared {
	case Listener, Creator:
		return State{Declared: declared, Verified: declared, Badge: BadgeApproved}, nil
	case Expert:
		return State{Declared: Expert, Verified: Listener, Badge: BadgePending}, nil
	case Label:
		return State{Declared: Label, Verified: Label, Badge: BadgePending}, nil
	case Admin:
		return State{}, fmt.Errorf("регистрация с ролью admin запрещена: %w", apperrors.ErrInvalidArgument)
	}
	return State{}, fmt.Errorf("неизвестная роль %q: %w", declared, apperrors.ErrInvalidArgument)
}

// NeedsVerification сообщает, проходит ли заявленная роль проверку админом.
func (s State) NeedsVerification() bool {
	return s.Declared == Expert || s.Declared == Label
}

// CanSubmitDocuments - подавать документы на проверку могут только expert.
func (s State) CanSubmitDocuments() bool {
	return s.Declared == Expert
}

// Approve - решение админа "одобрить". kind должен совпадать с заявленной
// ролью пользователя. Повторное применение дает то же состояние.
func (s State) Approve(kind Role) (State, error) {
	if err := s.checkDecisionKind(kind); err != nil {
		return State{}, err
	}
	return State{Declared: s.Declared, Verified: kind, Badge: BadgeApproved}, nil
}

// Reject - решение админа "отклонить": действующая роль понижается до
// listener, статус становится rejected.
func (s State) Reject(kind Role) (State, error) {
	if err := s.checkDecisionKind(kind); err != nil {
		return State{}, err
	}
	return State{Declared: s.Declared, Verified: Listener, Badge: BadgeRejected}, nil
}

func (s State) checkDecisionKind(kind Role) error {
	if kind != Expert && kind != Label {
		return fmt.Errorf("решение возможно только для ролей expert и label: %w", apperrors.ErrInvalidArgument)
	}
	if s.Declared != kind {
		return fmt.Errorf("заявленная роль пользователя %q, а не %q: %w", s.Declared, kind, apperrors.ErrInvalidArgument)
	}
	return nil
}

// IsVerified выводится из статуса проверки.
func (s State) IsVerified() bool {
	return s.Badge == BadgeApproved
}

// Authorize - проверка права на действие. Всегда по действующей роли,
// заявленная роль прав не дает. Admin проходит любую проверку.
// Право creator (загрузка контента) есть у creator, expert и label.
func Authorize(verified Role, required Role) bool {
	if verified == Admin {
		return true
	}
	if required == Creator {
		return verified == Creator || verified == Expert || verified == Label
	}
	return verified == required
}
