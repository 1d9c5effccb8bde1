package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "gymdesk/internal/adapters/email"
	"gymdesk/internal/adapters/storage"
	accountStore "gymdesk/internal/adapters/storage/account"
	auditStore "gymdesk/internal/adapters/storage/audit"
	employeeStore "gymdesk/internal/adapters/storage/employee"
	financeStore "gymdesk/internal/adapters/storage/finance"
	ledgerStore "gymdesk/internal/adapters/storage/ledger"
	memberStore "gymdesk/internal/adapters/storage/member"
	planStore "gymdesk/internal/adapters/storage/plan"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/application/projections"
	"gymdesk/internal/domain/account"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	dbPath := envOrDefault("GYMDESK_DB", "gymdesk.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	timedDB := storage.NewTimedDB(db)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	memStore := memberStore.NewSQLiteStore(timedDB)
	empStore := employeeStore.NewSQLiteStore(timedDB)
	ledStore := ledgerStore.NewSQLiteStore(timedDB)
	actStore := auditStore.NewSQLiteStore(timedDB)
	finStore := financeStore.NewSQLiteStore(timedDB)
	plnStore := planStore.NewSQLiteStore(timedDB)

	ctx := context.Background()

	// Seed the owner account and the default plan catalogue
	ownerUser := envOrDefault("GYMDESK_ADMIN_USER", "admin")
	ownerPassword := envOrDefault("GYMDESK_ADMIN_PASSWORD", "ka3ood gym")
	if err := orchestrators.ExecuteSeedOwner(ctx, orchestrators.CreateAccountDeps{AccountStore: acctStore}, ownerUser, ownerPassword); err != nil {
		log.Fatalf("failed to seed owner account: %v", err)
	}
	if err := orchestrators.ExecuteSeedPlans(ctx, plnStore); err != nil {
		log.Fatalf("failed to seed plans: %v", err)
	}

	// Configure email sender
	resendKey := os.Getenv("GYMDESK_RESEND_KEY")
	emailFrom := envOrDefault("GYMDESK_EMAIL_FROM", "Ka3ood Gym <noreply@ka3oodgym.com>")
	emailReply := envOrDefault("GYMDESK_REPLY_TO", "info@ka3oodgym.com")
	var sender emailPkg.Sender
	if resendKey != "" {
		sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		log.Println("Email sender configured (noop — set GYMDESK_RESEND_KEY for real delivery)")
	}

	// Daily expiry-reminder sweep
	reminderStopCh := make(chan struct{})
	reminderDeps := orchestrators.NotifyExpiringDeps{
		MemberStore: memStore,
		EmailSender: sender,
		FromAddress: emailFrom,
		ReplyTo:     emailReply,
		Now:         time.Now,
	}
	orchestrators.StartReminderWorker(orchestrators.NewReminderProcessor(reminderDeps), 24*time.Hour, reminderStopCh)
	defer close(reminderStopCh)

	// Authenticate the desk operator
	reader := bufio.NewScanner(os.Stdin)
	username, _ := prompt(reader, "username: ")
	password, _ := prompt(reader, "password: ")
	actor, err := orchestrators.ExecuteLogin(ctx, orchestrators.LoginInput{Username: username, Password: password}, orchestrators.LoginDeps{AccountStore: acctStore})
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	desk := orchestrators.NewDesk(orchestrators.DeskDeps{
		MemberStore:   memStore,
		EmployeeStore: empStore,
		LedgerStore:   ledStore,
		AuditStore:    actStore,
		Now:           time.Now,
	}, actor)
	if err := desk.ReloadIndex(ctx); err != nil {
		log.Fatalf("failed to build check-in index: %v", err)
	}

	fmt.Printf("gymdesk %s — signed in as %s (%s). Scan an ID, or type 'help'.\n", version, actor.Username, actor.Role)

	for {
		line, ok := prompt(reader, "> ")
		if !ok {
			return
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "ledger":
			showLedger(ctx, desk)
		case "cancel":
			cancelEntry(ctx, reader, desk, fields)
		case "report":
			showReport(ctx, memStore, finStore)
		case "dashboard":
			showDashboard(ctx, memStore, finStore, plnStore)
		case "export":
			exportSnapshot(ctx, memStore, empStore, finStore, actStore, actor, fields)
		case "remind":
			n, err := orchestrators.ExecuteNotifyExpiring(ctx, reminderDeps)
			if err != nil {
				fmt.Println("reminder sweep failed:", err)
				continue
			}
			fmt.Printf("sent %d reminders\n", n)
		case "reload":
			if err := desk.ReloadIndex(ctx); err != nil {
				fmt.Println("reload failed:", err)
			}
		default:
			// Anything else is treated as a scanned or typed ID.
			handleScan(ctx, desk, line)
		}
	}
}

func handleScan(ctx context.Context, desk *orchestrators.Desk, raw string) {
	result, err := desk.CheckIn(ctx, raw)
	if err != nil {
		fmt.Println("check-in failed:", err)
		return
	}
	switch {
	case result.Suppressed:
		// Duplicate read inside the suppression window; say nothing.
	case result.Error != "":
		fmt.Println("✗", result.Error)
	case result.Success:
		fmt.Printf("✓ %s (%s)\n", result.Target.Name(), result.Entry.Time)
		if result.Warning != "" {
			fmt.Println("⚠", result.Warning)
		}
		if result.HasDebt {
			fmt.Println("⚠ على العضو مديونية مستحقة")
		}
	}
}

func showLedger(ctx context.Context, desk *orchestrators.Desk) {
	entries, err := desk.LoadLedger(ctx)
	if err != nil {
		fmt.Println("ledger load failed:", err)
		return
	}
	for i, e := range entries {
		fmt.Printf("%2d. [%s] %s  %s  %s\n", i+1, e.Type, e.Time, e.TargetName, e.Status)
	}
	if len(entries) == 0 {
		fmt.Println("no check-ins today")
	}
}

func cancelEntry(ctx context.Context, reader *bufio.Scanner, desk *orchestrators.Desk, fields []string) {
	if len(fields) < 2 {
		fmt.Println("usage: cancel <ledger position>")
		return
	}
	pos, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("usage: cancel <ledger position>")
		return
	}
	entries, err := desk.LoadLedger(ctx)
	if err != nil || pos < 1 || pos > len(entries) {
		fmt.Println("no such ledger entry")
		return
	}
	entry := entries[pos-1]
	answer, _ := prompt(reader, fmt.Sprintf("cancel check-in for %s? [y/N] ", entry.TargetName))
	confirmed := strings.EqualFold(answer, "y")
	if err := desk.Cancel(ctx, entry, confirmed); err != nil {
		fmt.Println("cancel failed:", err)
		return
	}
	if confirmed {
		fmt.Println("cancelled")
	}
}

func showReport(ctx context.Context, memStore projections.DailyReportMemberStore, finStore projections.DailyReportFinanceStore) {
	report, err := projections.QueryDailyReport(ctx, "", projections.DailyReportDeps{
		MemberStore:  memStore,
		FinanceStore: finStore,
		Now:          time.Now,
	})
	if err != nil {
		fmt.Println("report failed:", err)
		return
	}
	fmt.Printf("%s — visits %d, new subscriptions %d, income %.2f, expenses %.2f, net %.2f\n",
		report.Date, report.MemberVisits, report.NewSubscriptions, report.Income, report.Expenses, report.Net)
}

func showDashboard(ctx context.Context, memStore projections.DashboardMemberStore, finStore projections.DashboardFinanceStore, setStore projections.DashboardSettingsStore) {
	summary, err := projections.QueryDashboard(ctx, projections.DashboardDeps{
		MemberStore:   memStore,
		FinanceStore:  finStore,
		SettingsStore: setStore,
		Now:           time.Now,
	})
	if err != nil {
		fmt.Println("dashboard failed:", err)
		return
	}
	fmt.Printf("members %d (active %d, expired %d, frozen %d, inactive %d, archived %d)\n",
		summary.TotalMembers, summary.ActiveMembers, summary.ExpiredMembers, summary.FrozenMembers, summary.InactiveMembers, summary.ArchivedMembers)
	fmt.Printf("checked in today %d, expiring within 7 days %d\n", summary.CheckedInToday, summary.ExpiringSoon)
	fmt.Printf("month revenue %.2f, deductions %.2f, net %.2f\n", summary.MonthRevenue, summary.MonthDeductions, summary.MonthNet)
	if summary.BackupOverdue {
		fmt.Println("⚠ backup overdue — run 'export'")
	}
}

func exportSnapshot(ctx context.Context, memStore orchestrators.MemberListerForReminders, empStore orchestrators.EmployeeListerForExport, finStore orchestrators.PaymentListerForExport, actStore orchestrators.AuditRecorder, actor account.Account, fields []string) {
	path := "gymdesk-backup.xlsx"
	if len(fields) > 1 {
		path = fields[1]
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Println("export failed:", err)
		return
	}
	defer f.Close()

	err = orchestrators.ExecuteExportData(ctx, f, orchestrators.ExportDataDeps{
		MemberStore:   memStore,
		EmployeeStore: empStore,
		PaymentStore:  finStore,
		AuditStore:    actStore,
		Actor:         actor,
	})
	if err != nil {
		fmt.Println("export failed:", err)
		return
	}
	fmt.Println("wrote", path)
}

func printHelp() {
	fmt.Println(`commands:
  <id or phone>   check in a member or employee
  ledger          show today's check-ins
  cancel <n>      undo ledger entry n (asks for confirmation)
  report          today's reconciliation sheet
  dashboard       membership and money overview
  export <file>   write the Excel backup
  remind          send expiry reminders now
  reload          rebuild the check-in index
  quit            exit`)
}

func prompt(reader *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !reader.Scan() {
		return "", false
	}
	return strings.TrimSpace(reader.Text()), true
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
