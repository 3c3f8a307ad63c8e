package application

import (
	"time"

	"github.com/bnema/pairup/internal/domain"
)

type AddMemberCommand struct {
	// ID is generated when empty.
	ID    domain.MemberID
	Name  string
	Slack string
}

type AddAbsenceCommand struct {
	MemberID domain.MemberID
	Start    time.Time
	End      time.Time
}

type RotateCommand struct {
	Notify bool
}
