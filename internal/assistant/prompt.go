package assistant

import (
	"fmt"
	"strings"
)

const descriptionPrompt = `Describe in 3-4 steps HOW to do the following job:

%s

Format:
STEP 1: [action]
STEP 2: [action]
STEP 3: [action]

Materials: [short list]

At most 80 words. Be direct.`

const technicianPrompt = `Choose the right technician for the job.

Job: %s

Technicians:
%s

Rules:
- Air Conditioning: air, climate control
- Plumbing: water, leak, pipe
- Electrical: light, outlet, wiring
- IT: computer, network, software
- General: cleaning, painting, repair

Reply with ONLY the technician's NAME, or NONE if nobody fits.
Example: John Smith`

const priorityPrompt = `Classify the urgency of this job:

%s

Categories:
- URGENT: critical, dangerous, operations stopped
- HIGH: important, needs attention
- MEDIUM: can wait a few days
- LOW: not urgent

Reply with ONLY one word: URGENT, HIGH, MEDIUM or LOW`

const estimatePrompt = `Estimate how long this job takes:

%s

Options:
- Quick: 30min, 1h, 2h
- Medium: 4h, 1 day
- Long: 2-3 days, 1 week

Reply in the form: 2h or 1 day`

func buildDescriptionPrompt(title string) string {
	return fmt.Sprintf(descriptionPrompt, title)
}

// buildTechnicianPrompt numbers candidates from 1.
func buildTechnicianPrompt(description string, candidates []string) string {
	var b strings.Builder
	for i, c := range candidates {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, c)
	}
	return fmt.Sprintf(technicianPrompt, description, b.String())
}

func buildPriorityPrompt(description string) string {
	return fmt.Sprintf(priorityPrompt, description)
}

func buildEstimatePrompt(description string) string {
	return fmt.Sprintf(estimatePrompt, description)
}
