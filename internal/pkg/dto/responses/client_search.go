package responses

// Portuguese-keyed shapes served by the client search and client detail routes.

type ClientSearchResult struct {
	Success   bool            `json:"success"`
	Total     int             `json:"total"`
	Clients   []ClientSummary `json:"clients"`
	Timestamp string          `json:"timestamp"`
}

type ClientSummary struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	CPF            string          `json:"cpf"`
	Telefone       string          `json:"telefone"`
	Email          string          `json:"email"`
	DataNascimento string          `json:"dataNascimento"`
	Ativo          bool            `json:"ativo"`
	Convenio       *ClientConvenio `json:"convenio"`
}

type ClientConvenio struct {
	ID                string `json:"id"`
	Nome              string `json:"nome"`
	Plano             string `json:"plano"`
	NumeroCarteirinha string `json:"numeroCarteirinha"`
}

type ClientDetail struct {
	ClientSummary
	Sexo     string          `json:"sexo"`
	Endereco *ClientEndereco `json:"endereco"`
}

type ClientEndereco struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

type ClientDetailResult struct {
	Success   bool          `json:"success"`
	Client    *ClientDetail `json:"client,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp string        `json:"timestamp"`
}
