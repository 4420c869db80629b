package i18n

// Message identifies a template in the catalog.
type Message string

// Risk factors.
const (
	FactorOverdue             Message = "factor.overdue"
	FactorRecentOverdue       Message = "factor.recent_overdue"
	FactorBehindSchedule      Message = "factor.behind_schedule"
	FactorLagging             Message = "factor.lagging"
	FactorLongDuration        Message = "factor.long_duration"
	FactorNoResources         Message = "factor.no_resources"
	FactorShouldStart         Message = "factor.should_start"
	FactorStartPassed         Message = "factor.start_passed"
	FactorApproachingDeadline Message = "factor.approaching_deadline"
	FactorApproachingLow      Message = "factor.approaching_low"
	FactorCompleted           Message = "factor.completed"
	FactorAmpleTime           Message = "factor.ample_time"
	FactorGoodProgress        Message = "factor.good_progress"
)

// Risk levels and project summaries.
const (
	RiskLevel1          Message = "risk.level_1"
	RiskLevel2          Message = "risk.level_2"
	RiskLevel3          Message = "risk.level_3"
	RiskLevel4          Message = "risk.level_4"
	RiskLevel5          Message = "risk.level_5"
	RiskSummaryCritical Message = "risk.summary_critical"
	RiskSummaryHigh     Message = "risk.summary_high"
	RiskSummaryMedium   Message = "risk.summary_medium"
	RiskSummaryLow      Message = "risk.summary_low"
)

// Resource and schedule summaries.
const (
	ResourceSummary     Message = "resource.summary"
	ScheduleTaskOverdue Message = "schedule.task_overdue"
	ScheduleSummary     Message = "schedule.summary"
)

// Contract reconciliation.
const (
	ContractAddMissing      Message = "contract.add_missing"
	ContractExpediteDelayed Message = "contract.expedite_delayed"
	ContractReviewResources Message = "contract.review_resources"
	ContractLowCompliance   Message = "contract.low_compliance"
	ContractSummary         Message = "contract.summary"
)

// Report labels.
const (
	ReportTitle               Message = "report.title"
	ReportDate                Message = "report.date"
	ReportProject             Message = "report.project"
	ReportExecutiveSummary    Message = "report.executive_summary"
	ReportOverview            Message = "report.overview"
	ReportTaskDistribution    Message = "report.task_distribution"
	ReportCompleted           Message = "report.completed"
	ReportInProgress          Message = "report.in_progress"
	ReportNotStarted          Message = "report.not_started"
	ReportTaskCount           Message = "report.task_count"
	ReportWeightedProgress    Message = "report.weighted_progress"
	ReportRiskAnalysis        Message = "report.risk_analysis"
	ReportProjectRiskLevel    Message = "report.project_risk_level"
	ReportBannerCritical      Message = "report.banner_critical"
	ReportBannerAttention     Message = "report.banner_attention"
	ReportBannerFavorable     Message = "report.banner_favorable"
	ReportHighRiskTasks       Message = "report.high_risk_tasks"
	ReportHighRiskItem        Message = "report.high_risk_item"
	ReportDelayedTasks        Message = "report.delayed_tasks"
	ReportDelayedItem         Message = "report.delayed_item"
	ReportIdentifiedRisks     Message = "report.identified_risks"
	ReportLongestTasks        Message = "report.longest_tasks"
	ReportResourceAnalysis    Message = "report.resource_analysis"
	ReportTotalResources      Message = "report.total_resources"
	ReportOverloaded          Message = "report.overloaded"
	ReportProductivityItem    Message = "report.productivity_item"
	ReportContractAnalysis    Message = "report.contract_analysis"
	ReportComplianceScore     Message = "report.compliance_score"
	ReportMissingActivities   Message = "report.missing_activities"
	ReportExtraActivities     Message = "report.extra_activities"
	ReportContractUnavailable Message = "report.contract_unavailable"
	ReportRecommendations     Message = "report.recommendations"
	ReportRecUrgent1          Message = "report.rec_urgent_1"
	ReportRecUrgent2          Message = "report.rec_urgent_2"
	ReportRecUrgent3          Message = "report.rec_urgent_3"
	ReportRecWatch1           Message = "report.rec_watch_1"
	ReportRecWatch2           Message = "report.rec_watch_2"
	ReportRecWatch3           Message = "report.rec_watch_3"
	ReportRecKeep1            Message = "report.rec_keep_1"
	ReportRecKeep2            Message = "report.rec_keep_2"
	ReportRecKeep3            Message = "report.rec_keep_3"
	ReportRecDelayed          Message = "report.rec_delayed"
	ReportFooter              Message = "report.footer"
)

var catalog = map[Locale]map[Message]string{
	English: {
		FactorOverdue:             "Already {{.Days}} days overdue",
		FactorRecentOverdue:       "Recently became overdue ({{.Days}} days)",
		FactorBehindSchedule:      "Work progress ({{.Percent}}%) significantly behind time progress ({{.TimePercent}}%)",
		FactorLagging:             "Work progress lagging behind schedule",
		FactorLongDuration:        "Long duration task ({{.Duration}} hours)",
		FactorNoResources:         "No resources assigned",
		FactorShouldStart:         "Should have started {{.Days}} days ago",
		FactorStartPassed:         "Start date passed without progress",
		FactorApproachingDeadline: "Only {{.Days}} days left with {{.Percent}}% complete",
		FactorApproachingLow:      "Approaching deadline with low completion rate ({{.Days}} days left, {{.Percent}}% complete)",
		FactorCompleted:           "Task completed",
		FactorAmpleTime:           "Ample time remaining ({{.Days}} days)",
		FactorGoodProgress:        "Good progress maintained ({{.Percent}}% complete)",

		RiskLevel1:          "Very Low Risk - On Track",
		RiskLevel2:          "Low Risk - Minor Concerns",
		RiskLevel3:          "Medium Risk - Needs Monitoring",
		RiskLevel4:          "High Risk - Likely to Delay",
		RiskLevel5:          "Critical Risk - Certain to Delay",
		RiskSummaryCritical: "⚠️ CRITICAL: {{.Count}} activities certain to delay. Immediate intervention required!",
		RiskSummaryHigh:     "⚠️ HIGH RISK: {{.Count}} activities likely to delay. Close monitoring needed.",
		RiskSummaryMedium:   "⚡ MEDIUM RISK: {{.Count}} activities need monitoring.",
		RiskSummaryLow:      "✅ LOW RISK: Project is on track with minimal delay risk.",

		ResourceSummary:     "Analyzed {{.Count}} resources.",
		ScheduleTaskOverdue: "Task '{{.Name}}' is overdue.",
		ScheduleSummary:     "Found {{.Count}} delayed tasks.",

		ContractAddMissing:      "Add {{.Count}} missing activities to the schedule to comply with contract requirements.",
		ContractExpediteDelayed: "Expedite {{.Count}} delayed activities to meet deadlines.",
		ContractReviewResources: "Review resource allocation for underperforming resources.",
		ContractLowCompliance:   "Schedule compliance is below acceptable threshold. Immediate action required.",
		ContractSummary:         "Analyzed {{.Tasks}} schedule tasks against {{.Activities}} contract activities. Found {{.Delayed}} delayed tasks and {{.Missing}} missing activities. Overall compliance: {{printf \"%.1f\" .Score}}%",

		ReportTitle:               "📊 SCHEDULE STATUS REPORT",
		ReportDate:                "Report Date",
		ReportProject:             "Project",
		ReportExecutiveSummary:    "📈 EXECUTIVE SUMMARY",
		ReportOverview:            "The project has **{{.Total}} tasks** in total, with an average progress of **{{printf \"%.1f\" .Score}}%**.",
		ReportTaskDistribution:    "Task Distribution",
		ReportCompleted:           "Completed",
		ReportInProgress:          "In Progress",
		ReportNotStarted:          "Not Started",
		ReportTaskCount:           "{{.Count}} tasks ({{printf \"%.1f\" .Score}}%)",
		ReportWeightedProgress:    "Duration-weighted progress: **{{printf \"%.1f\" .Score}}%**",
		ReportRiskAnalysis:        "⚠️ RISK ANALYSIS",
		ReportProjectRiskLevel:    "**Project Risk Level:** Level {{.Level}}/5",
		ReportBannerCritical:      "🔴 **CRITICAL ATTENTION:** Project presents high risk of delays!",
		ReportBannerAttention:     "🟡 **ATTENTION:** Project requires close monitoring.",
		ReportBannerFavorable:     "🟢 **FAVORABLE SITUATION:** Project is under control.",
		ReportHighRiskTasks:       "High Risk Tasks ({{.Count}})",
		ReportHighRiskItem:        "**{{.Name}}** (Risk Level {{.Level}}/5) - {{.Percent}}% complete",
		ReportDelayedTasks:        "🚨 DELAYED TASKS ({{.Count}})",
		ReportDelayedItem:         "**{{.Name}}**: {{.Days}} days delayed ({{.Percent}}% complete)",
		ReportIdentifiedRisks:     "⚠️ IDENTIFIED RISKS",
		ReportLongestTasks:        "Longest Tasks",
		ReportResourceAnalysis:    "👥 RESOURCE ANALYSIS",
		ReportTotalResources:      "**Total Resources:** {{.Count}}",
		ReportOverloaded:          "**Overloaded Resources:** {{.Name}}",
		ReportProductivityItem:    "**{{.Name}}**: productivity {{printf \"%.0f\" .Score}}% ({{.Count}} tasks)",
		ReportContractAnalysis:    "📑 CONTRACT ANALYSIS",
		ReportComplianceScore:     "**Compliance Score:** {{printf \"%.1f\" .Score}}%",
		ReportMissingActivities:   "Missing Activities ({{.Count}})",
		ReportExtraActivities:     "Schedule Tasks Not in Contract ({{.Count}})",
		ReportContractUnavailable: "Contract could not be analyzed: {{.Name}}",
		ReportRecommendations:     "💡 RECOMMENDATIONS",
		ReportRecUrgent1:          "**URGENT:** Review the schedule and reallocate resources to critical tasks",
		ReportRecUrgent2:          "Hold an emergency meeting with stakeholders",
		ReportRecUrgent3:          "Consider overtime or additional resources",
		ReportRecWatch1:           "Monitor high-risk tasks daily",
		ReportRecWatch2:           "Anticipate possible bottlenecks and prepare contingency plans",
		ReportRecWatch3:           "Increase communication frequency with the team",
		ReportRecKeep1:            "Maintain the current work pace",
		ReportRecKeep2:            "Continue weekly monitoring",
		ReportRecKeep3:            "Prepare for the next project phases",
		ReportRecDelayed:          "Prioritize completing the {{.Count}} delayed tasks",
		ReportFooter:              "*Report automatically generated by Planus*",
	},
	Portuguese: {
		FactorOverdue:             "Já atrasado {{.Days}} dias",
		FactorRecentOverdue:       "Atrasado recentemente ({{.Days}} dias)",
		FactorBehindSchedule:      "Progresso do trabalho ({{.Percent}}%) significativamente atrás do tempo ({{.TimePercent}}%)",
		FactorLagging:             "Progresso do trabalho atrasado em relação ao cronograma",
		FactorLongDuration:        "Tarefa de longa duração ({{.Duration}} horas)",
		FactorNoResources:         "Sem recursos atribuídos",
		FactorShouldStart:         "Deveria ter iniciado há {{.Days}} dias",
		FactorStartPassed:         "Data de início passou sem progresso",
		FactorApproachingDeadline: "Apenas {{.Days}} dias restantes com {{.Percent}}% concluído",
		FactorApproachingLow:      "Aproximando-se do prazo com baixa taxa de conclusão ({{.Days}} dias restantes, {{.Percent}}% concluído)",
		FactorCompleted:           "Tarefa concluída",
		FactorAmpleTime:           "Tempo restante amplo ({{.Days}} dias)",
		FactorGoodProgress:        "Bom progresso mantido ({{.Percent}}% concluído)",

		RiskLevel1:          "Risco Muito Baixo - No Prazo",
		RiskLevel2:          "Risco Baixo - Preocupações Menores",
		RiskLevel3:          "Risco Médio - Precisa Monitoramento",
		RiskLevel4:          "Risco Alto - Provável Atraso",
		RiskLevel5:          "Risco Crítico - Atraso Certo",
		RiskSummaryCritical: "⚠️ CRÍTICO: {{.Count}} atividades com atraso certo. Intervenção imediata necessária!",
		RiskSummaryHigh:     "⚠️ ALTO RISCO: {{.Count}} atividades com provável atraso. Monitoramento próximo necessário.",
		RiskSummaryMedium:   "⚡ RISCO MÉDIO: {{.Count}} atividades precisam de monitoramento.",
		RiskSummaryLow:      "✅ BAIXO RISCO: Projeto no prazo com risco mínimo de atraso.",

		ResourceSummary:     "Analisados {{.Count}} recursos.",
		ScheduleTaskOverdue: "Tarefa '{{.Name}}' está atrasada.",
		ScheduleSummary:     "Encontradas {{.Count}} tarefas atrasadas.",

		ContractAddMissing:      "Adicionar {{.Count}} atividades faltantes ao cronograma para cumprir os requisitos do contrato.",
		ContractExpediteDelayed: "Acelerar {{.Count}} atividades atrasadas para cumprir os prazos.",
		ContractReviewResources: "Revisar alocação de recursos para recursos com baixo desempenho.",
		ContractLowCompliance:   "Conformidade do cronograma está abaixo do limite aceitável. Ação imediata necessária.",
		ContractSummary:         "Analisadas {{.Tasks}} tarefas do cronograma contra {{.Activities}} atividades do contrato. Encontradas {{.Delayed}} tarefas atrasadas e {{.Missing}} atividades faltantes. Conformidade geral: {{printf \"%.1f\" .Score}}%",

		ReportTitle:               "📊 RELATÓRIO DE STATUS DO CRONOGRAMA",
		ReportDate:                "Data do Relatório",
		ReportProject:             "Projeto",
		ReportExecutiveSummary:    "📈 RESUMO EXECUTIVO",
		ReportOverview:            "O projeto possui **{{.Total}} tarefas** no total, com um progresso médio de **{{printf \"%.1f\" .Score}}%**.",
		ReportTaskDistribution:    "Distribuição das Tarefas",
		ReportCompleted:           "Concluídas",
		ReportInProgress:          "Em Andamento",
		ReportNotStarted:          "Não Iniciadas",
		ReportTaskCount:           "{{.Count}} tarefas ({{printf \"%.1f\" .Score}}%)",
		ReportWeightedProgress:    "Progresso ponderado pela duração: **{{printf \"%.1f\" .Score}}%**",
		ReportRiskAnalysis:        "⚠️ ANÁLISE DE RISCOS",
		ReportProjectRiskLevel:    "**Nível de Risco do Projeto:** Nível {{.Level}}/5",
		ReportBannerCritical:      "🔴 **ATENÇÃO CRÍTICA:** O projeto apresenta alto risco de atrasos!",
		ReportBannerAttention:     "🟡 **ATENÇÃO:** O projeto requer monitoramento próximo.",
		ReportBannerFavorable:     "🟢 **SITUAÇÃO FAVORÁVEL:** O projeto está sob controle.",
		ReportHighRiskTasks:       "Tarefas de Alto Risco ({{.Count}})",
		ReportHighRiskItem:        "**{{.Name}}** (Risco Nível {{.Level}}/5) - {{.Percent}}% concluído",
		ReportDelayedTasks:        "🚨 TAREFAS ATRASADAS ({{.Count}})",
		ReportDelayedItem:         "**{{.Name}}**: {{.Days}} dias de atraso ({{.Percent}}% concluído)",
		ReportIdentifiedRisks:     "⚠️ RISCOS IDENTIFICADOS",
		ReportLongestTasks:        "Tarefas Mais Longas",
		ReportResourceAnalysis:    "👥 ANÁLISE DE RECURSOS",
		ReportTotalResources:      "**Total de Recursos:** {{.Count}}",
		ReportOverloaded:          "**Recursos Sobrecarregados:** {{.Name}}",
		ReportProductivityItem:    "**{{.Name}}**: produtividade {{printf \"%.0f\" .Score}}% ({{.Count}} tarefas)",
		ReportContractAnalysis:    "📑 ANÁLISE DE CONTRATO",
		ReportComplianceScore:     "**Índice de Conformidade:** {{printf \"%.1f\" .Score}}%",
		ReportMissingActivities:   "Atividades Faltantes ({{.Count}})",
		ReportExtraActivities:     "Tarefas do Cronograma Fora do Contrato ({{.Count}})",
		ReportContractUnavailable: "Não foi possível analisar o contrato: {{.Name}}",
		ReportRecommendations:     "💡 RECOMENDAÇÕES",
		ReportRecUrgent1:          "**URGENTE:** Revisar cronograma e realocar recursos para tarefas críticas",
		ReportRecUrgent2:          "Realizar reunião de emergência com stakeholders",
		ReportRecUrgent3:          "Considerar horas extras ou recursos adicionais",
		ReportRecWatch1:           "Monitorar diariamente as tarefas de alto risco",
		ReportRecWatch2:           "Antecipar possíveis gargalos e preparar planos de contingência",
		ReportRecWatch3:           "Aumentar frequência de comunicação com a equipe",
		ReportRecKeep1:            "Manter o ritmo atual de trabalho",
		ReportRecKeep2:            "Continuar monitoramento semanal",
		ReportRecKeep3:            "Preparar para próximas fases do projeto",
		ReportRecDelayed:          "Priorizar a conclusão das {{.Count}} tarefas atrasadas",
		ReportFooter:              "*Relatório gerado automaticamente pelo Planus*",
	},
	Spanish: {
		FactorOverdue:             "Ya retrasado {{.Days}} días",
		FactorRecentOverdue:       "Retrasado recientemente ({{.Days}} días)",
		FactorBehindSchedule:      "Progreso del trabajo ({{.Percent}}%) significativamente detrás del tiempo ({{.TimePercent}}%)",
		FactorLagging:             "Progreso del trabajo rezagado respecto al cronograma",
		FactorLongDuration:        "Tarea de larga duración ({{.Duration}} horas)",
		FactorNoResources:         "Sin recursos asignados",
		FactorShouldStart:         "Debería haber comenzado hace {{.Days}} días",
		FactorStartPassed:         "La fecha de inicio pasó sin progreso",
		FactorApproachingDeadline: "Solo quedan {{.Days}} días con {{.Percent}}% completado",
		FactorApproachingLow:      "Acercándose a la fecha límite con baja tasa de finalización ({{.Days}} días restantes, {{.Percent}}% completado)",
		FactorCompleted:           "Tarea completada",
		FactorAmpleTime:           "Tiempo restante amplio ({{.Days}} días)",
		FactorGoodProgress:        "Buen progreso mantenido ({{.Percent}}% completado)",

		RiskLevel1:          "Riesgo Muy Bajo - A Tiempo",
		RiskLevel2:          "Riesgo Bajo - Preocupaciones Menores",
		RiskLevel3:          "Riesgo Medio - Necesita Monitoreo",
		RiskLevel4:          "Riesgo Alto - Probable Retraso",
		RiskLevel5:          "Riesgo Crítico - Retraso Seguro",
		RiskSummaryCritical: "⚠️ CRÍTICO: {{.Count}} actividades con retraso seguro. ¡Se requiere intervención inmediata!",
		RiskSummaryHigh:     "⚠️ ALTO RIESGO: {{.Count}} actividades con probable retraso. Se necesita monitoreo cercano.",
		RiskSummaryMedium:   "⚡ RIESGO MEDIO: {{.Count}} actividades necesitan monitoreo.",
		RiskSummaryLow:      "✅ BAJO RIESGO: Proyecto a tiempo con riesgo mínimo de retraso.",

		ResourceSummary:     "Analizados {{.Count}} recursos.",
		ScheduleTaskOverdue: "La tarea '{{.Name}}' está retrasada.",
		ScheduleSummary:     "Encontradas {{.Count}} tareas retrasadas.",

		ContractAddMissing:      "Agregar {{.Count}} actividades faltantes al cronograma para cumplir con los requisitos del contrato.",
		ContractExpediteDelayed: "Acelerar {{.Count}} actividades retrasadas para cumplir con los plazos.",
		ContractReviewResources: "Revisar asignación de recursos para recursos con bajo rendimiento.",
		ContractLowCompliance:   "El cumplimiento del cronograma está por debajo del umbral aceptable. Se requiere acción inmediata.",
		ContractSummary:         "Analizadas {{.Tasks}} tareas del cronograma contra {{.Activities}} actividades del contrato. Encontradas {{.Delayed}} tareas retrasadas y {{.Missing}} actividades faltantes. Cumplimiento general: {{printf \"%.1f\" .Score}}%",

		ReportTitle:               "📊 INFORME DE ESTADO DEL CRONOGRAMA",
		ReportDate:                "Fecha del Informe",
		ReportProject:             "Proyecto",
		ReportExecutiveSummary:    "📈 RESUMEN EJECUTIVO",
		ReportOverview:            "El proyecto tiene **{{.Total}} tareas** en total, con un progreso promedio de **{{printf \"%.1f\" .Score}}%**.",
		ReportTaskDistribution:    "Distribución de Tareas",
		ReportCompleted:           "Completadas",
		ReportInProgress:          "En Progreso",
		ReportNotStarted:          "No Iniciadas",
		ReportTaskCount:           "{{.Count}} tareas ({{printf \"%.1f\" .Score}}%)",
		ReportWeightedProgress:    "Progreso ponderado por duración: **{{printf \"%.1f\" .Score}}%**",
		ReportRiskAnalysis:        "⚠️ ANÁLISIS DE RIESGOS",
		ReportProjectRiskLevel:    "**Nivel de Riesgo del Proyecto:** Nivel {{.Level}}/5",
		ReportBannerCritical:      "🔴 **ATENCIÓN CRÍTICA:** ¡El proyecto presenta alto riesgo de retrasos!",
		ReportBannerAttention:     "🟡 **ATENCIÓN:** El proyecto requiere monitoreo cercano.",
		ReportBannerFavorable:     "🟢 **SITUACIÓN FAVORABLE:** El proyecto está bajo control.",
		ReportHighRiskTasks:       "Tareas de Alto Riesgo ({{.Count}})",
		ReportHighRiskItem:        "**{{.Name}}** (Riesgo Nivel {{.Level}}/5) - {{.Percent}}% completado",
		ReportDelayedTasks:        "🚨 TAREAS RETRASADAS ({{.Count}})",
		ReportDelayedItem:         "**{{.Name}}**: {{.Days}} días de retraso ({{.Percent}}% completado)",
		ReportIdentifiedRisks:     "⚠️ RIESGOS IDENTIFICADOS",
		ReportLongestTasks:        "Tareas Más Largas",
		ReportResourceAnalysis:    "👥 ANÁLISIS DE RECURSOS",
		ReportTotalResources:      "**Total de Recursos:** {{.Count}}",
		ReportOverloaded:          "**Recursos Sobrecargados:** {{.Name}}",
		ReportProductivityItem:    "**{{.Name}}**: productividad {{printf \"%.0f\" .Score}}% ({{.Count}} tareas)",
		ReportContractAnalysis:    "📑 ANÁLISIS DE CONTRATO",
		ReportComplianceScore:     "**Índice de Cumplimiento:** {{printf \"%.1f\" .Score}}%",
		ReportMissingActivities:   "Actividades Faltantes ({{.Count}})",
		ReportExtraActivities:     "Tareas del Cronograma Fuera del Contrato ({{.Count}})",
		ReportContractUnavailable: "No fue posible analizar el contrato: {{.Name}}",
		ReportRecommendations:     "💡 RECOMENDACIONES",
		ReportRecUrgent1:          "**URGENTE:** Revisar el cronograma y reasignar recursos a las tareas críticas",
		ReportRecUrgent2:          "Realizar una reunión de emergencia con los stakeholders",
		ReportRecUrgent3:          "Considerar horas extra o recursos adicionales",
		ReportRecWatch1:           "Monitorear diariamente las tareas de alto riesgo",
		ReportRecWatch2:           "Anticipar posibles cuellos de botella y preparar planes de contingencia",
		ReportRecWatch3:           "Aumentar la frecuencia de comunicación con el equipo",
		ReportRecKeep1:            "Mantener el ritmo de trabajo actual",
		ReportRecKeep2:            "Continuar el monitoreo semanal",
		ReportRecKeep3:            "Prepararse para las próximas fases del proyecto",
		ReportRecDelayed:          "Priorizar la finalización de las {{.Count}} tareas retrasadas",
		ReportFooter:              "*Informe generado automáticamente por Planus*",
	},
}
