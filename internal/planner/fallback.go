package planner

import (
	"time"

	"go.uber.org/zap"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

const (
	fallbackGoalDescription = "Sample Goal"

	FallbackAnalysis = "This is a sample task plan. The AI service is not configured or encountered an error. " +
		"Please configure your Gemini API key to get AI-generated plans."
)

type fallbackTask struct {
	title       string
	description string
	detailed    string
	steps       []string
	priority    constants.TaskPriority
	hours       int
}

var fallbackTasks = []fallbackTask{
	{
		title:       "Research and Planning for: ",
		description: "Conduct thorough research and create a detailed project plan",
		detailed: "This initial phase focuses on comprehensive research and strategic planning. Begin by gathering all relevant " +
			"information about the project requirements, constraints, and success criteria. Analyze similar projects or case " +
			"studies to understand best practices and potential pitfalls. Create a detailed project plan that outlines milestones, " +
			"deliverables, and timelines. Document your findings and share them with stakeholders for feedback. This foundation " +
			"will guide all subsequent work.",
		steps: []string{
			"Gather and analyze project requirements and constraints",
			"Research similar projects and industry best practices",
			"Identify potential risks and mitigation strategies",
			"Create detailed project timeline with milestones",
			"Document findings and get stakeholder approval",
		},
		priority: constants.PriorityHigh,
		hours:    8,
	},
	{
		title:       "Setup and Preparation",
		description: "Set up necessary tools, environments, and resources",
		detailed: "In this phase, you'll prepare your working environment and gather necessary resources. Install and configure " +
			"all required tools, software, and frameworks. Set up version control, development environments, and any collaboration " +
			"platforms. Create initial project structure and documentation templates. Verify that all team members have access to " +
			"necessary resources. This preparation ensures smooth execution of the main implementation phase.",
		steps: []string{
			"Install required development tools and frameworks",
			"Configure development and testing environments",
			"Set up version control and collaboration platforms",
			"Create initial project structure and templates",
			"Verify team access to all necessary resources",
		},
		priority: constants.PriorityMedium,
		hours:    6,
	},
	{
		title:       "Core Implementation",
		description: "Execute the main tasks and deliverables",
		detailed: "This is the main execution phase where you'll implement the core functionality. Break down the work into " +
			"manageable chunks and tackle them systematically. Follow coding best practices and maintain clean, documented code. " +
			"Regular commits and progress reviews help maintain momentum. Stay focused on the primary objectives while remaining " +
			"flexible to adjust as needed. This phase typically consumes the most time and effort.",
		steps: []string{
			"Break down work into manageable tasks",
			"Implement core features following best practices",
			"Write clean, documented code with regular commits",
			"Conduct code reviews and address feedback",
			"Track progress and adjust timeline as needed",
		},
		priority: constants.PriorityHigh,
		hours:    16,
	},
	{
		title:       "Testing and Quality Assurance",
		description: "Test all components and ensure quality standards",
		detailed: "Quality assurance is critical for project success. Develop comprehensive test cases covering all functionality. " +
			"Perform unit tests, integration tests, and end-to-end testing. Document any bugs or issues discovered and track their " +
			"resolution. Involve stakeholders in user acceptance testing when appropriate. This thorough testing ensures the final " +
			"product meets all requirements and quality standards.",
		steps: []string{
			"Develop comprehensive test cases and scenarios",
			"Execute unit, integration, and end-to-end tests",
			"Document and prioritize any issues found",
			"Fix bugs and retest affected functionality",
			"Conduct user acceptance testing with stakeholders",
		},
		priority: constants.PriorityMedium,
		hours:    8,
	},
	{
		title:       "Final Review and Deployment",
		description: "Perform final checks and deploy/deliver the results",
		detailed: "The final phase involves careful review and deployment preparation. Conduct a comprehensive review of all " +
			"deliverables against initial requirements. Address any remaining issues or improvements. Prepare deployment " +
			"documentation and rollback procedures. Execute the deployment following established protocols. Monitor the initial " +
			"deployment closely and be prepared to address any issues. Celebrate the successful completion of the project.",
		steps: []string{
			"Review all deliverables against requirements",
			"Address final improvements and polish",
			"Prepare deployment documentation and procedures",
			"Execute deployment following protocols",
			"Monitor deployment and address any issues",
		},
		priority: constants.PriorityCritical,
		hours:    4,
	},
}

var fallbackRecommendations = []string{
	"Configure your Gemini API key (GEMINI_API_KEY) in the environment or .env file",
	"Set GEMINI_API_KEY environment variable",
	"Get API key from: https://aistudio.google.com/app/apikey",
	"Break down large tasks into smaller chunks",
	"Set clear milestones and deadlines",
	"Regular progress reviews help maintain momentum",
}

var fallbackRisks = []string{
	"Gemini API not configured - using sample data",
	"Scope creep without proper planning",
	"Resource constraints may impact timeline",
	"Inadequate testing may lead to quality issues",
}

// FallbackGenerator builds the fixed five-task plan used whenever the model
// cannot be reached or its answer cannot be used.
type FallbackGenerator struct {
	now    func() time.Time
	logger *zap.Logger
}

func NewFallbackGenerator(now func() time.Time, logger *zap.Logger) *FallbackGenerator {
	if now == nil {
		now = systemNow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackGenerator{now: now, logger: logger}
}

// Generate never fails. req may be nil.
func (g *FallbackGenerator) Generate(req *Request, reason FallbackReason) Plan {
	goal := fallbackGoalDescription
	if req != nil {
		goal = req.Description
	}

	g.logger.Warn("generating fallback plan", zap.String("reason", string(reason)))

	start := g.now()
	scheduler := NewScheduler(start)
	tasks := make([]PlannedTask, 0, len(fallbackTasks))
	for i, ft := range fallbackTasks {
		title := ft.title
		if i == 0 {
			title += goal
		}

		dependencies := []int{}
		if i > 0 {
			dependencies = []int{i}
		}

		taskStart, taskEnd := scheduler.Place(ft.hours)
		tasks = append(tasks, PlannedTask{
			Title:                  title,
			Description:            ft.description,
			DetailedDescription:    ft.detailed,
			Steps:                  append([]string(nil), ft.steps...),
			EstimatedDurationHours: ft.hours,
			Priority:               ft.priority,
			Status:                 constants.StatusPending,
			OrderIndex:             i + 1,
			Dependencies:           dependencies,
			StartDate:              taskStart,
			EndDate:                taskEnd,
		})
	}

	return Plan{
		Analysis:            FallbackAnalysis,
		TotalTasks:          len(tasks),
		EstimatedTotalHours: scheduler.TotalHours(),
		SuggestedStartDate:  start,
		SuggestedEndDate:    scheduler.Cursor(),
		Tasks:               tasks,
		Recommendations:     append([]string(nil), fallbackRecommendations...),
		Risks:               append([]string(nil), fallbackRisks...),
		Source:              SourceFallback,
		FallbackReason:      reason,
	}
}
