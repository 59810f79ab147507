package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scrawl-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

var (
	chatDepth    int
	chatArchived bool
	chatPlain    bool
	chatSave     bool
	chatQuery    string
)

var chatCmd = &cobra.Command{
	Use:   "chat [url]",
	Short: "Chat about a site's content",
	Long: `Crawls the site, embeds the extracted text and opens an interactive
chat grounded in the crawled content.

With --archived the corpus is loaded from the archive instead of
crawling, using the URL's domain as the key.`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().IntVarP(&chatDepth, "depth", "d", domain.DefaultMaxDepth, "maximum crawl depth")
	chatCmd.Flags().BoolVar(&chatArchived, "archived", false, "load the corpus from the archive instead of crawling")
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "line-based chat instead of the full-screen interface")
	chatCmd.Flags().BoolVar(&chatSave, "save", false, "save the conversation to the archive on exit")
	chatCmd.Flags().StringVarP(&chatQuery, "query", "q", "", "print the retrieved chunks for one query instead of chatting")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	seedURL := domain.NormalizeURL(args[0])
	host := domain.Host(seedURL)
	if host == "" {
		return fmt.Errorf("invalid URL: %s", args[0])
	}

	corpus, err := chatCorpus(cmd, seedURL, host)
	if err != nil {
		return err
	}

	chunks, err := chatService.Load(cmd.Context(), corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	cmd.Printf("Loaded %d chunks from %s\n", chunks, host)

	if chatQuery != "" {
		return runChatQuery(cmd, chatQuery)
	}

	if chatPlain {
		err = runChatREPL(cmd)
	} else {
		err = runChatTUI(cmd, host)
	}
	if err != nil {
		return err
	}

	if chatSave {
		if archiveStore == nil {
			return errors.New("archive store not configured")
		}
		conv := chatService.History()
		if conv != nil && conv.Len() > 0 {
			if err := archiveStore.SaveConversation(cmd.Context(), conv); err != nil {
				return fmt.Errorf("saving conversation: %w", err)
			}
			cmd.Printf("Conversation saved as %s\n", conv.ID)
		}
	}

	return nil
}

// chatCorpus produces the text corpus, either from the archive or by
// crawling the site now.
func chatCorpus(cmd *cobra.Command, seedURL, host string) (string, error) {
	if chatArchived {
		if archiveStore == nil {
			return "", errors.New("archive store not configured")
		}
		bucket, err := archiveStore.GetBucket(cmd.Context(), host)
		if err != nil {
			return "", fmt.Errorf("loading archived crawl for %s: %w", host, err)
		}
		return bucket.Text, nil
	}

	if crawlService == nil {
		return "", errors.New("crawl service not configured")
	}
	cmd.Printf("Crawling %s...\n", seedURL)
	buckets, err := crawlService.CrawlAll(cmd.Context(), []string{seedURL}, domain.CrawlOptions{MaxDepth: chatDepth})
	if err != nil {
		return "", fmt.Errorf("crawl failed: %w", err)
	}
	bucket, ok := buckets[host]
	if !ok {
		return "", fmt.Errorf("no content crawled from %s", host)
	}
	return bucket.Text, nil
}

// runChatQuery prints the retrieval results for one query and exits
// without calling the chat model.
func runChatQuery(cmd *cobra.Command, query string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	scored, err := retrievalService.Query(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	if len(scored) == 0 {
		cmd.Println("No chunks above the similarity threshold.")
		return nil
	}

	for _, sc := range scored {
		cmd.Printf("[%.3f] %s\n\n", sc.Score, sc.Chunk.Text)
	}
	return nil
}

func runChatTUI(cmd *cobra.Command, host string) error {
	// Panic recovery keeps the terminal usable and surfaces the trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{Chat: chatService}, host)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

func runChatREPL(cmd *cobra.Command) error {
	reader := bufio.NewReader(os.Stdin)
	cmd.Println("Type a question, or 'exit' to quit.")

	for {
		cmd.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		reply, err := chatService.Ask(cmd.Context(), question)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			continue
		}
		cmd.Println(reply)
		cmd.Println()
	}
}
