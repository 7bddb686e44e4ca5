package constvars

// Upstream endpoint paths
const (
	UpstreamAppointmentSearch       = "/api/AgendamentoIntegracao/BuscaAgendamentoPaciente"
	UpstreamAppointmentCreate       = "/api/AgendamentoIntegracao/Agendar"
	UpstreamAppointmentConfirm      = "/api/AgendamentoIntegracao/Confirmar"
	UpstreamAppointmentUpdateStatus = "/api/AgendamentoIntegracao/AtualizarStatus"
	UpstreamAppointmentCancel       = "/api/AgendamentoIntegracao/Cancelar"

	UpstreamScheduleHours     = "/AgendaIntegracao/ConsultarHorarios"
	UpstreamScheduleAvailable = "/AgendaIntegracao/HorariosDisponiveis"

	UpstreamPatientSearch = "/api/PacienteIntegracao/Pesquisar"
	UpstreamPatientByID   = "/PacienteIntegracao/Buscar/%s"
	UpstreamPatientCreate = "/PacienteIntegracao/Cadastrar"
	UpstreamPatientUpdate = "/PacienteIntegracao/Atualizar"

	UpstreamProfessionalSearch    = "/api/ProfissionalIntegracao/Pesquisar"
	UpstreamSpecialtySearch       = "/api/EspecialidadeIntegracao/Pesquisar"
	UpstreamLocationSearch        = "/api/EmpresaIntegracao/PesquisarUnidadesConsulta"
	UpstreamServiceSearch         = "/api/ProcedimentoIntegracao/Pesquisar"
	UpstreamHealthInsuranceSearch = "/ConvenioIntegracao/Pesquisar"
	UpstreamHealthInsuranceByID   = "/ConvenioIntegracao/Buscar/%s"
	UpstreamPlanSearch            = "/api/PlanoIntegracao/Pesquisar"
)

// Resource names used in logs, metrics and error messages
const (
	ResourceAppointment     = "appointment"
	ResourceSchedule        = "schedule"
	ResourcePatient         = "patient"
	ResourceProfessional    = "professional"
	ResourceSpecialty       = "specialty"
	ResourceLocation        = "location"
	ResourceService         = "service"
	ResourceHealthInsurance = "health_insurance"
	ResourcePlan            = "plan"
)

// Appointment event routing keys
const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventAppointmentCancelled     = "appointment.cancelled"
)
