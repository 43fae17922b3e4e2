package main

import (
	"log/slog"

	"recipebox-backend/cmd/recipebox-cli/commands"
	"recipebox-backend/lib/serviceutil"
	"recipebox-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	ctx := serviceutil.SignalContext()
	_, err := telemetry.SetupFromEnv(ctx, "recipebox-cli")
	if err != nil {
		slog.Warn("telemetry is disabled", "err", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
