package responses

// ToClientSummary renders a patient in the client search shape.
func (p Patient) ToClientSummary() ClientSummary {
	summary := ClientSummary{
		ID:             p.ID,
		Nome:           p.Name,
		CPF:            p.CPF,
		Telefone:       p.Phone,
		Email:          p.Email,
		DataNascimento: p.BirthDate,
		Ativo:          p.Active,
	}
	if p.HealthInsurance != nil {
		summary.Convenio = &ClientConvenio{
			ID:                p.HealthInsurance.ID,
			Nome:              p.HealthInsurance.Name,
			Plano:             p.HealthInsurance.PlanName,
			NumeroCarteirinha: p.HealthInsurance.CardNumber,
		}
	}
	return summary
}

func (p Patient) ToClientDetail() ClientDetail {
	detail := ClientDetail{
		ClientSummary: p.ToClientSummary(),
		Sexo:          p.Gender,
	}
	if p.Address != nil {
		detail.Endereco = &ClientEndereco{
			Logradouro:  p.Address.Street,
			Numero:      p.Address.Number,
			Complemento: p.Address.Complement,
			Bairro:      p.Address.Neighborhood,
			Cidade:      p.Address.City,
			Estado:      p.Address.State,
			CEP:         p.Address.ZipCode,
		}
	}
	return detail
}
