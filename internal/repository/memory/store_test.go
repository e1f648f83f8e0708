package memory

import (
	"github.com/NathanFontaine1981/Talbiyah.ai-sub011/internal/service"
)

// The stores must keep satisfying the service storage contracts. The
// assertions live in a test file so that the memory package itself does
// not import service, which would cycle through the service tests.
var (
	_ service.SlotStore      = (*SlotStore)(nil)
	_ service.InterviewStore = (*InterviewStore)(nil)
)
