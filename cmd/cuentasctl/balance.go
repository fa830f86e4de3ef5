package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/repositories/database/pgsql"
	"github.com/lautarocloudy/api-cuenta-corrientes/pkg/database"
)

var balanceCmd = &cobra.Command{
	Use:     "balance",
	Short:   "Print the all-time balance of every client or supplier",
	Example: "  cuentasctl balance --tipo venta\n  cuentasctl balance --tipo compra",
	RunE:    runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().String("tipo", string(domain.InvoiceTypeSale), "venta (clients) or compra (suppliers)")
}

func runBalance(cmd *cobra.Command, args []string) error {
	tipo, _ := cmd.Flags().GetString("tipo")
	role := domain.InvoiceType(tipo)
	if !role.Valid() {
		return fmt.Errorf("--tipo must be venta or compra, got %q", tipo)
	}

	ctx := cmd.Context()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	balanceService := services.NewBalanceService(repos.PartyRepo, repos.InvoiceRepo, repos.ReceiptRepo)

	balances, err := balanceService.ComputeBalancesForAllParties(ctx, role)
	if err != nil {
		return fmt.Errorf("failed to compute balances: %w", err)
	}
	return printBalances(cmd.OutOrStdout(), role, balances)
}

func printBalances(out io.Writer, role domain.InvoiceType, balances []domain.Balance) error {
	settledHeader := "COBRADO"
	if role == domain.InvoiceTypePurchase {
		settledHeader = "PAGADO"
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "ID\tNOMBRE\tFACTURADO\t%s\tSALDO\t\n", settledHeader)
	for _, b := range balances {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
			b.PartyID, b.PartyName, b.TotalInvoiced.StringFixed(2), b.TotalCollected.StringFixed(2), b.Saldo.StringFixed(2))
	}
	return w.Flush()
}
