package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleContract = `SERVICE AGREEMENT 42/2024

1. Scope
Activity: Design Phase
TASK - Site preparation
item:Install pumps
Deadline: 2024-07-30
Due date - 2024-08-15
Completion Date: 2024-09-01
Deliverable: As-built drawings
OUTPUT: Commissioning report
Activity:
`

func TestExtract(t *testing.T) {
	doc := Extract(sampleContract)

	assert.Equal(t, sampleContract, doc.RawText)
	assert.Equal(t, []string{"Design Phase", "Site preparation", "Install pumps"}, doc.Activities)
	assert.Equal(t, []string{"2024-07-30", "2024-08-15", "2024-09-01"}, doc.Deadlines)
	assert.Equal(t, []string{"As-built drawings", "Commissioning report"}, doc.Deliverables)
}

func TestExtractCRLF(t *testing.T) {
	doc := Extract("Activity: Foundations\r\nActivity: Roofing\r\n")
	assert.Equal(t, []string{"Foundations", "Roofing"}, doc.Activities)
}

func TestExtractNoMarkers(t *testing.T) {
	doc := Extract("The contractor shall perform the works.")
	assert.Empty(t, doc.Activities)
	assert.NotNil(t, doc.Activities)
	assert.Empty(t, doc.Deadlines)
	assert.Empty(t, doc.Deliverables)
}
