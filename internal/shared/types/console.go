package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplaySectionTitle(title string)
	DisplayTrendBars(title string, monthlyCounts []MonthlyCount)
	DisplayBarChart(title string, bars []BarValue)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// MonthlyCount representa o total de aluguéis de um mês, usado nos gráficos de tendência.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// BarValue é uma barra rotulada de um gráfico de barras.
type BarValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}
