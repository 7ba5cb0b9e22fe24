// Command docqa answers questions about local documents from the
// terminal. It ingests the given files into an in-memory session and
// either runs an interactive chat loop or answers a single question.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smallnest/docqa/config"
	"github.com/smallnest/docqa/llm/openai"
	"github.com/smallnest/docqa/log"
	"github.com/smallnest/docqa/memory"
	"github.com/smallnest/docqa/rag"
	"github.com/smallnest/docqa/rag/engine"
	"github.com/smallnest/docqa/rag/loader"
	"github.com/smallnest/docqa/rag/store"
	"github.com/smallnest/docqa/session"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

var (
	configPath string
	files      []string
)

func main() {
	root := &cobra.Command{
		Use:           "docqa",
		Short:         "Ask questions about your documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the config file")
	root.PersistentFlags().StringSliceVarP(&files, "file", "f", nil, "document file to ingest (repeatable)")

	chat := &cobra.Command{
		Use:   "chat",
		Short: "Interactive question-answer loop over the ingested documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup()
			if err != nil {
				return err
			}
			return app.chat(cmd.Context())
		},
	}

	ask := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup()
			if err != nil {
				return err
			}
			return app.ask(cmd.Context(), args[0])
		},
	}

	root.AddCommand(chat, ask)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

type app struct {
	engine  *engine.Engine
	session *session.Session
}

func setup() (*app, error) {
	// A missing .env is fine; the key may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv(cfg.Provider.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.Provider.APIKeyEnv)
	}

	client := openai.NewClient(openai.Config{
		APIKey:     apiKey,
		BaseURL:    cfg.Provider.BaseURL,
		ChatModel:  cfg.Provider.ChatModel,
		EmbedModel: cfg.Provider.EmbedModel,
	})

	logger := log.New(cfg.Log.Level)
	ragCfg := cfg.RAGConfig()

	manager := session.NewManager(func() rag.VectorIndex {
		return store.NewMemoryIndex(client, ragCfg.TopK)
	})
	sess := manager.Create()

	ctx := context.Background()
	for _, file := range files {
		docs, err := loader.ForFile(file).Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := sess.Index().Add(ctx, docs); err != nil {
			return nil, err
		}
		logger.Info("ingested %d units from %s", len(docs), file)
	}

	e := engine.New(client, memory.NewManager(client), ragCfg, engine.WithLogger(logger))
	return &app{engine: e, session: sess}, nil
}

func (a *app) ask(ctx context.Context, question string) error {
	result, err := a.engine.Answer(ctx, question, a.session)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}

func (a *app) chat(ctx context.Context) error {
	fmt.Println(infoStyle.Render(fmt.Sprintf("%d units indexed. Ask away; empty line quits.", a.session.Index().Len())))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			return nil
		}

		result, err := a.engine.Answer(ctx, question, a.session)
		if err != nil {
			// The turn failed cleanly; the session can continue.
			fmt.Println(errorStyle.Render("error: " + err.Error()))
			continue
		}
		printResult(result)
	}
}

func printResult(result *rag.Result) {
	fmt.Println(answerStyle.Render(result.Answer))
	for i, doc := range result.Documents {
		ref := fmt.Sprintf("[%d] %s p.%d", i+1, doc.Metadata.Source, doc.Metadata.PageNumber)
		fmt.Println(sourceStyle.Render(ref))
	}
}
