package commands

import (
	"io"
	"log/slog"

	"sdi-showcase/internal/pkg/clock"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/shared"
)

func NewAffiliateCommandsWithCodeSource(session *shared.Session, form *forms.AffiliateForm, clk clock.Clock, logger *slog.Logger, src io.Reader) AffiliateCommands {
	uc := NewAffiliateCommands(session, form, clk, logger).(*affiliateCommandsImpl)
	uc.codeSource = src
	return uc
}
