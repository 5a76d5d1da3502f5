package updatewatch

import (
	"github.com/updatewatch/updatewatch/internal/log"
	"github.com/updatewatch/updatewatch/updatewatch/advisory"
	"github.com/updatewatch/updatewatch/updatewatch/logger"
)

// Advise evaluates the upgrade-prompt decision for the given installed and
// available version strings under the given policy. This is the one-shot
// convenience over constructing an Advisor and checking it once.
func Advise(policy advisory.Policy, installed, available string) advisory.Decision {
	advisor := advisory.NewAdvisor(policy)
	advisor.Check(installed, available)
	return advisor.Decision()
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}
