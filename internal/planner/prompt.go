package planner

import (
	"fmt"
	"strings"
	"time"
)

const taskSchemaExample = `  "tasks": [
    {
      "title": "Task name",
      "description": "Brief 1-2 sentence summary of the task",
      "detailedDescription": "Comprehensive 3-5 paragraph explanation covering: what needs to be done, why it's important, key considerations, potential challenges, and expected outcomes. Be specific and actionable.",
      "steps": [
        "Step 1: Specific action to take",
        "Step 2: Next specific action",
        "Step 3: Continue with detailed steps"
      ],
      "estimatedDurationHours": 5,
      "priority": "HIGH",
      "status": "PENDING",
      "orderIndex": 1,
      "dependencies": []
    }
  ],
  "recommendations": ["recommendation 1", "recommendation 2"],
  "risks": ["risk 1", "risk 2"]
}
`

const planRequirements = `CRITICAL REQUIREMENTS:

TASK QUANTITY:
- Analyze the goal complexity and create appropriate number of tasks (3-15 tasks based on complexity)
- For simple goals: 3-5 tasks
- For moderate goals: 5-8 tasks
- For complex goals: 8-15 tasks

TASK DESCRIPTIONS:
- 'description': Short summary (1-2 sentences) - what the task is about
- 'detailedDescription': Comprehensive explanation (3-5 paragraphs, 200-400 words) that includes:
  * What needs to be accomplished and why it matters
  * Key activities and deliverables
  * Important considerations and best practices
  * Potential challenges and how to address them
  * Expected outcomes and success criteria
- 'steps': Array of 3-8 specific, actionable steps to complete the task
  * Each step should be clear and concrete
  * Steps should be in logical order
  * Include specific tools, resources, or methods when relevant

OTHER REQUIREMENTS:
- Each task must have: title, description, detailedDescription, steps, estimatedDurationHours, priority, status, orderIndex, dependencies
- Vary the task durations realistically: simple tasks (1-4 hours), moderate (4-8 hours), complex (8-20 hours)
- Priority must be one of: LOW, MEDIUM, HIGH, CRITICAL
- Distribute priorities realistically (not all tasks should be HIGH or CRITICAL)
- Status must always be: PENDING
- estimatedDurationHours must be a realistic number based on task complexity
- orderIndex should be sequential starting from 1
- dependencies should be an empty array [] or array of orderIndex values for prerequisite tasks
- totalTasks should equal the number of tasks in the array
- estimatedTotalHours should be the sum of all task hours
- Be realistic and specific: consider the goal's actual requirements when creating descriptions
- Return ONLY the JSON object, no markdown code blocks, no explanations
`

// PromptBuilder renders a planning request into the instruction sent to the model.
type PromptBuilder struct {
	now func() time.Time
}

func NewPromptBuilder(now func() time.Time) *PromptBuilder {
	if now == nil {
		now = systemNow
	}
	return &PromptBuilder{now: now}
}

// Build is deterministic for a given request and clock reading.
func (b *PromptBuilder) Build(req Request) string {
	now := b.now()

	var sb strings.Builder
	sb.WriteString("You are an expert project manager and task planner. ")
	sb.WriteString("Break down the following goal into detailed, actionable tasks with comprehensive descriptions.\n\n")
	fmt.Fprintf(&sb, "Goal: %s\n", req.Description)

	if req.TargetDate != nil {
		fmt.Fprintf(&sb, "Target Completion Date: %s\n", req.TargetDate.Format(dateLayout))
		fmt.Fprintf(&sb, "Days Available: %d days\n", DaysAvailable(now, *req.TargetDate))
		sb.WriteString("Please ensure the total estimated hours fit realistically within this timeframe.\n")
	}

	if len(req.Constraints) > 0 {
		fmt.Fprintf(&sb, "Constraints: %s\n", strings.Join(req.Constraints, ", "))
	}

	sb.WriteString("\nProvide a structured task breakdown in JSON format with this EXACT structure:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"analysis\": \"Brief analysis of the goal and approach (2-3 sentences)\",\n")
	sb.WriteString("  \"totalTasks\": <number_of_tasks>,\n")
	sb.WriteString("  \"estimatedTotalHours\": <sum_of_all_task_hours>,\n")
	fmt.Fprintf(&sb, "  \"suggestedStartDate\": %q,\n", now.Format(LocalDateTimeLayout))
	if req.TargetDate != nil {
		fmt.Fprintf(&sb, "  \"suggestedEndDate\": %q,\n", req.TargetDate.Format(LocalDateTimeLayout))
	} else {
		sb.WriteString("  \"suggestedEndDate\": \"<calculate based on total hours>\",\n")
	}
	sb.WriteString(taskSchemaExample)
	sb.WriteString("\n")
	sb.WriteString(planRequirements)

	return sb.String()
}

// DaysAvailable counts whole days between now and target, truncated toward
// zero. A target in the past yields a negative count.
func DaysAvailable(now, target time.Time) int {
	return int(target.Sub(now) / (24 * time.Hour))
}
