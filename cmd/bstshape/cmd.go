package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/g-m-twostay/bstree/Metrics"
	"github.com/g-m-twostay/bstree/Trees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type treeFlags struct {
	file     string
	remove   []string
	logLevel string
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("bad --log-level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func parseKeys(fields []string) ([]int, error) {
	ks := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("key %q is not an integer: %w", f, err)
		}
		ks = append(ks, k)
	}
	return ks, nil
}

// buildTree inserts the keys from args, then the keys from --file, then removes
// the --remove keys. Every key maps to its insertion index.
func (f *treeFlags) buildTree(cmd *cobra.Command, args []string) (*Trees.BSTree[int, int], zerolog.Logger, error) {
	log, err := newLogger(f.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, log, err
	}
	fields := append([]string(nil), args...)
	if f.file != "" {
		bz, err := os.ReadFile(f.file)
		if err != nil {
			return nil, log, fmt.Errorf("error reading key file: %w", err)
		}
		fields = append(fields, strings.Fields(string(bz))...)
	}
	ks, err := parseKeys(fields)
	if err != nil {
		return nil, log, err
	}
	rm, err := parseKeys(f.remove)
	if err != nil {
		return nil, log, err
	}

	tree := Trees.New[int, int](Trees.WithLogger(log))
	inserted, removed := 0, 0
	for i, k := range ks {
		if ok, _ := tree.Inserted(k, i); ok {
			inserted++
		}
	}
	for _, k := range rm {
		if ok, _ := tree.Removed(k); ok {
			removed++
		}
	}
	log.Info().Msgf("built tree from %s keys: %s inserted, %s removed",
		humanize.Comma(int64(len(ks))), humanize.Comma(int64(inserted)), humanize.Comma(int64(removed)))
	return tree, log, nil
}

func writeReport(w io.Writer, tree *Trees.BSTree[int, int], orders []Trees.Order) {
	for _, o := range orders {
		var b strings.Builder
		tree.Walk(o, func(n *Trees.Node[int, int]) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(n.Key()))
		})
		fmt.Fprintf(w, "%-6s %s\n", o.String()+":", b.String())
	}
	s := tree.Shape()
	fmt.Fprintf(w, "size:     %s\n", humanize.Comma(int64(s.Size)))
	fmt.Fprintf(w, "height:   %d\n", s.Height)
	fmt.Fprintf(w, "leaves:   %s\n", humanize.Comma(int64(s.Leaves)))
	fmt.Fprintf(w, "internal: %s (%s full, %s partial)\n",
		humanize.Comma(int64(s.Internal)), humanize.Comma(int64(s.Full)), humanize.Comma(int64(s.Partial)))
	fmt.Fprintf(w, "balanced: %t\ncomplete: %t\nfull:     %t\nperfect:  %t\n",
		s.Balanced, s.Complete, s.FullTree, s.Perfect)
}

func reportCommand(f *treeFlags) *cobra.Command {
	var orders []string
	cmd := &cobra.Command{
		Use:   "report [keys...]",
		Short: "Print traversals and the shape of a tree built from integer keys",
	}
	cmd.Flags().StringSliceVar(&orders, "order", []string{"in"}, "Traversal orders to print: in, out, pre, post, level.")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ords := make([]Trees.Order, 0, len(orders))
		for _, s := range orders {
			o, err := Trees.ParseOrder(s)
			if err != nil {
				return err
			}
			ords = append(ords, o)
		}
		tree, _, err := f.buildTree(cmd, args)
		if err != nil {
			return err
		}
		writeReport(cmd.OutOrStdout(), tree, ords)
		return nil
	}
	return cmd
}

func serveCommand(f *treeFlags) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve [keys...]",
		Short: "Serve the shape of a tree built from integer keys as prometheus metrics",
	}
	cmd.Flags().StringVar(&listen, "listen", ":9100", "Address to serve /metrics on.")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		tree, log, err := f.buildTree(cmd, args)
		if err != nil {
			return err
		}
		reg := prometheus.NewRegistry()
		if err := reg.Register(Metrics.NewCollector("bstshape", tree)); err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		log.Info().Str("listen", listen).Msg("serving metrics")
		return http.ListenAndServe(listen, mux)
	}
	return cmd
}

// RootCommand is the bstshape command with its subcommands.
func RootCommand() *cobra.Command {
	f := &treeFlags{}
	cmd := &cobra.Command{
		Use:           "bstshape",
		Short:         "Build a binary search tree and inspect its shape",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&f.file, "file", "", "File of whitespace separated integer keys, inserted after the arguments.")
	cmd.PersistentFlags().StringSliceVar(&f.remove, "remove", nil, "Keys to remove after building.")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error.")
	cmd.AddCommand(reportCommand(f), serveCommand(f))
	return cmd
}
