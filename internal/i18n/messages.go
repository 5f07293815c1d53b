package i18n

var catalog = map[string]map[string]string{
	LocalePT: {
		"error.validation": "Dados inválidos na requisição.",
		"error.internal":   "Erro interno do servidor.",

		"user.email.exists":  "Este email já está cadastrado.",
		"user.email.invalid": "Email inválido.",
		"user.login.invalid": "Email ou senha inválidos.",
		"user.login.success": "Login realizado com sucesso.",
		"user.not_found":     "Usuário não encontrado.",

		"workshop.not_found":   "Oficina não encontrada.",
		"workshop.slug.exists": "Já existe uma oficina com este identificador.",

		"appointment.not_found":       "Agendamento não encontrado.",
		"appointment.invalid_date":    "Data ou hora inválida.",
		"appointment.slot.taken":      "Este horário já está reservado.",
		"appointment.slot.unknown":    "Horário fora do expediente.",
		"appointment.invalid_state":   "Mudança de status inválida.",
		"appointment.service.unknown": "Tipo de serviço inválido.",
	},
	LocaleEN: {
		"error.validation": "Invalid request data.",
		"error.internal":   "Internal server error.",

		"user.email.exists":  "This email is already registered.",
		"user.email.invalid": "Invalid email address.",
		"user.login.invalid": "Invalid email or password.",
		"user.login.success": "Login successful.",
		"user.not_found":     "User not found.",

		"workshop.not_found":   "Workshop not found.",
		"workshop.slug.exists": "A workshop with this identifier already exists.",

		"appointment.not_found":       "Appointment not found.",
		"appointment.invalid_date":    "Invalid date or time.",
		"appointment.slot.taken":      "This time slot is already booked.",
		"appointment.slot.unknown":    "Time outside working hours.",
		"appointment.invalid_state":   "Invalid status change.",
		"appointment.service.unknown": "Invalid service type.",
	},
}
