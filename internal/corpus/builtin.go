package corpus

// Builtin returns the bundled business-analysis curriculum so the binary is
// usable with zero setup. External corpus directories replace it entirely
// rather than merging.
func Builtin() (*Corpus, error) {
	return New(builtinEntries, builtinTemplates)
}

var builtinEntries = []Entry{
	{
		ID:       "ba-definition",
		Topic:    "Business Analysis Definition",
		Question: "What is business analysis?",
		Answer: "Business analysis is the practice of enabling change in an organisation " +
			"by defining needs and recommending solutions that deliver value to stakeholders. " +
			"It bridges the gap between business problems and workable solutions by " +
			"investigating goals, analysing processes, and specifying requirements.",
		Examples: []string{
			"A business analyst interviews warehouse staff to find why orders ship late, then proposes a revised picking process.",
		},
		RelatedTopics: []string{"requirements engineering", "stakeholder management"},
		Difficulty:    Beginner,
	},
	{
		ID:       "ba-role",
		Topic:    "Business Analysis Definition",
		Question: "What does a business analyst do day to day?",
		Answer: "A business analyst elicits requirements from stakeholders, documents and " +
			"prioritises them, models current and future processes, and validates that " +
			"delivered solutions actually meet the business need. They act as a translator " +
			"between business users and technical teams.",
		RelatedTopics: []string{"elicitation", "documentation"},
		Difficulty:    Beginner,
	},
	{
		ID:       "req-types",
		Topic:    "Requirements Types",
		Question: "What are the main types of requirements?",
		Answer: "Requirements are commonly split into business requirements (why the change " +
			"is needed), stakeholder requirements (what users need), functional requirements " +
			"(what the solution must do), and non-functional requirements (qualities such as " +
			"performance, security, and usability). Transition requirements cover what is " +
			"needed only during rollout.",
		Examples: []string{
			"\"The system shall let an agent refund an order\" is functional; \"refunds complete within two seconds\" is non-functional.",
		},
		RelatedTopics: []string{"specification", "quality attributes"},
		Difficulty:    Beginner,
	},
	{
		ID:       "req-elicitation",
		Topic:    "Requirements Elicitation",
		Question: "Which techniques are used to elicit requirements?",
		Answer: "Common elicitation techniques include interviews, workshops, observation " +
			"(job shadowing), surveys, document analysis, and prototyping. Interviews give " +
			"depth, workshops build consensus, and observation uncovers what people actually " +
			"do rather than what they say they do.",
		RelatedTopics: []string{"interviews", "workshops"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "stakeholder-analysis",
		Topic:    "Stakeholder Analysis",
		Question: "How do you identify and analyse stakeholders?",
		Answer: "Stakeholder analysis starts by listing everyone affected by or able to " +
			"influence the change, then classifying them by power and interest. A " +
			"power/interest grid tells you who to manage closely, keep satisfied, keep " +
			"informed, or simply monitor. Revisit the analysis as the project evolves.",
		Examples: []string{
			"A regulator has high power and low day-to-day interest: keep satisfied, not spammed.",
		},
		RelatedTopics: []string{"communication planning", "sponsors"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "process-modelling",
		Topic:    "Process Modelling",
		Question: "What is process modelling and why is it useful?",
		Answer: "Process modelling captures how work flows through an organisation as " +
			"diagrams, typically in BPMN or simple flowcharts. An as-is model exposes " +
			"bottlenecks and rework loops; a to-be model communicates the proposed change. " +
			"Models give stakeholders a shared picture that prose requirements cannot.",
		RelatedTopics: []string{"BPMN", "workflow"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "use-cases",
		Topic:    "Use Cases",
		Question: "How do you write a good use case?",
		Answer: "A use case names an actor, a goal, and the main success scenario as a " +
			"numbered sequence of actor-system interactions, plus extensions for the " +
			"interesting failure paths. Keep each step observable and free of UI detail: " +
			"\"Customer submits order\" rather than \"Customer clicks the green button\".",
		RelatedTopics: []string{"user stories", "scenarios"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "user-stories",
		Topic:    "User Stories",
		Question: "What makes a well-formed user story?",
		Answer: "A user story follows the \"As a <role>, I want <capability>, so that " +
			"<benefit>\" shape and is judged by the INVEST criteria: independent, " +
			"negotiable, valuable, estimable, small, and testable. Acceptance criteria " +
			"turn the story into something a team can verify.",
		Examples: []string{
			"As a returning customer, I want saved payment details, so that checkout takes seconds.",
		},
		RelatedTopics: []string{"agile", "acceptance criteria"},
		Difficulty:    Beginner,
	},
	{
		ID:       "req-prioritisation",
		Topic:    "Requirements Prioritisation",
		Question: "How should requirements be prioritised?",
		Answer: "MoSCoW (must, should, could, won't) is the most widely used scheme; " +
			"weighted scoring and Kano analysis add rigour when stakeholders disagree. " +
			"Prioritisation is a negotiation over value, cost, and risk, not a ranking " +
			"the analyst performs alone.",
		RelatedTopics: []string{"scope management", "planning"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "gap-analysis",
		Topic:    "Gap Analysis",
		Question: "What is gap analysis?",
		Answer: "Gap analysis compares the current state of a capability against the " +
			"desired future state and itemises what must change to close the distance: " +
			"process changes, new systems, training, or policy. The output feeds directly " +
			"into scoping and prioritisation.",
		RelatedTopics: []string{"current state", "future state"},
		Difficulty:    Beginner,
	},
	{
		ID:       "change-management",
		Topic:    "Change Management",
		Question: "How are requirement changes controlled?",
		Answer: "A change control process records each requested change, assesses its " +
			"impact on scope, schedule, and cost, and routes it to an agreed authority " +
			"for a decision. Traceability links make impact assessment cheap; without " +
			"them every change request is an archaeology project.",
		RelatedTopics: []string{"traceability", "scope creep"},
		Difficulty:    Advanced,
	},
	{
		ID:       "risk-analysis",
		Topic:    "Risk Analysis",
		Question: "How does a business analyst approach risk?",
		Answer: "Identify risks early, describe each as a cause-event-impact statement, " +
			"and score probability and impact to focus mitigation where it matters. " +
			"Requirements themselves carry risk: ambiguity, unstated assumptions, and " +
			"gold-plating are the analyst's own failure modes to manage.",
		RelatedTopics: []string{"assumptions", "mitigation"},
		Difficulty:    Advanced,
	},
	{
		ID:       "acceptance-criteria",
		Topic:    "Acceptance Criteria",
		Question: "What are acceptance criteria and how are they written?",
		Answer: "Acceptance criteria define the conditions a solution must satisfy for a " +
			"requirement to be considered done. Given/When/Then phrasing keeps them " +
			"concrete and testable. Each criterion should be binary, met or not met, " +
			"with no room for interpretation at sign-off.",
		RelatedTopics: []string{"testing", "definition of done"},
		Difficulty:    Intermediate,
	},
	{
		ID:       "ba-documentation",
		Topic:    "Business Analysis Documentation",
		Question: "Which documents does a business analyst typically produce?",
		Answer: "Typical artefacts include the business case, a business requirements " +
			"document or product backlog, process models, data dictionaries, and " +
			"traceability matrices. The right level of documentation depends on the " +
			"delivery approach: lean backlogs for agile teams, fuller specifications " +
			"for contractual or regulated work.",
		RelatedTopics: []string{"business case", "traceability"},
		Difficulty:    Beginner,
	},
}

var builtinTemplates = []Template{
	{ID: "t-concept-what", Pattern: "What is {topic} and why does it matter?", ContextTags: []string{"definition"}, Difficulty: Beginner, Type: TypeConcept},
	{ID: "t-concept-explain", Pattern: "Explain {topic} in your own words.", ContextTags: []string{"definition", "recall"}, Difficulty: Beginner, Type: TypeConcept},
	{ID: "t-practical-apply", Pattern: "How would you apply {topic} on your current project?", ContextTags: []string{"hands-on"}, Difficulty: Intermediate, Type: TypePractical},
	{ID: "t-practical-steps", Pattern: "Walk through the steps you would take to perform {topic}.", ContextTags: []string{"hands-on", "process"}, Difficulty: Intermediate, Type: TypePractical},
	{ID: "t-scenario-failure", Pattern: "A project skipped {topic} entirely. What goes wrong first?", ContextTags: []string{"scenario"}, Difficulty: Intermediate, Type: TypeScenario},
	{ID: "t-scenario-conflict", Pattern: "Two stakeholders disagree during {topic}. How do you resolve it?", ContextTags: []string{"scenario", "stakeholders"}, Difficulty: Advanced, Type: TypeScenario},
	{ID: "t-comparison", Pattern: "How does {topic} differ from the alternatives, and when would you pick each?", ContextTags: []string{"comparison"}, Difficulty: Advanced, Type: TypeComparison},
	{ID: "t-application-value", Pattern: "Give a concrete example where {topic} saved a project time or money.", ContextTags: []string{"application", "value"}, Difficulty: Intermediate, Type: TypeApplication},
}
