package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/bikeshare-dashboard-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total de passos informado.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Exporting reports").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplaySectionTitle exibe o título de uma seção do dashboard.
func (c *Console) DisplaySectionTitle(title string) {
	pterm.DefaultSection.Println(title)
}

// DisplayTrendBars exibe a tendência mensal de aluguéis com barras e variação mês a mês.
func (c *Console) DisplayTrendBars(title string, monthlyCounts []types.MonthlyCount) {
	// Encontra o valor máximo para escala
	maxCount := 0
	for _, mc := range monthlyCounts {
		if mc.Count > maxCount {
			maxCount = mc.Count
		}
	}

	if maxCount == 0 {
		pterm.Warning.Printfln("No rentals recorded for %s", title)
		return
	}

	tableData := pterm.TableData{
		{"Month", "Rentals", "", "MoM Change"},
	}

	var prevCount *int

	for _, mc := range monthlyCounts {
		barLength := int(float64(mc.Count) / float64(maxCount) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgLightBlue.Sprint(bar)
		change := ""

		if prevCount != nil {
			if *prevCount == 0 {
				if mc.Count == 0 {
					change = BrightYellow("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = BrightGreen("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := float64(mc.Count-*prevCount) / float64(*prevCount) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = BrightYellow("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 999:
					change = BrightGreen(">+999%")
					barColor = pterm.FgGreen.Sprint(bar)
				case changePercent > 0:
					change = BrightGreen(fmt.Sprintf("+%.2f%%", changePercent))
					barColor = pterm.FgGreen.Sprint(bar)
				default:
					change = BrightRed(fmt.Sprintf("%.2f%%", changePercent))
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			mc.Month,
			FormatCount(mc.Count),
			barColor,
			change,
		})

		current := mc.Count
		prevCount = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// barStyles segue a paleta dos gráficos da página web.
var barStyles = []*pterm.Style{
	pterm.NewStyle(pterm.FgLightCyan),
	pterm.NewStyle(pterm.FgYellow),
	pterm.NewStyle(pterm.FgLightGreen),
	pterm.NewStyle(pterm.FgRed),
}

// DisplayBarChart exibe um gráfico de barras com o valor de cada barra.
func (c *Console) DisplayBarChart(title string, bars []types.BarValue) {
	ptermBars := make(pterm.Bars, len(bars))
	for i, b := range bars {
		ptermBars[i] = pterm.Bar{
			Label: fmt.Sprintf("%s (%s)", b.Label, FormatCount(b.Value)),
			Value: b.Value,
			Style: barStyles[i%len(barStyles)],
		}
	}

	rendered, err := pterm.DefaultBarChart.
		WithBars(ptermBars).
		WithHorizontal().
		WithShowValue().
		WithWidth(50).
		Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render %s: %v", title, err)
		return
	}

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(rendered)
	fmt.Println("\n" + panel)
}

var countPrinter = message.NewPrinter(language.English)

// FormatCount formata um inteiro com separador de milhar: 1234567 -> "1,234,567".
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}
