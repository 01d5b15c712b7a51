package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/raftkit/raftconfig/config"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// nodeManifest is the provisioning artifact written by "generate": a
// fresh node identity plus the effective configuration it starts with.
type nodeManifest struct {
	NodeID uuid.UUID     `yaml:"node_id"`
	Config config.Config `yaml:"config"`
}

func initLogging() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %s", logLevel)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func printYAML(cfg *config.Config) {
	bytes, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	fmt.Print(string(bytes))
}

func runDefaults() {
	cfg := config.DefaultConfig()
	printYAML(&cfg)
}

func runCheck(args []string) {
	cfg, err := config.Build(args)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	log.WithField("cluster", cfg.ClusterName).Info("configuration OK")
}

func runPrint(args []string) {
	cfg, err := config.Build(args)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	printYAML(cfg)
}

func runBindings() {
	for _, b := range config.Bindings() {
		fmt.Printf("--%-28s %s\n", b.Flag, b.Env)
	}
}

func writeManifest(filepath string, manifest nodeManifest) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	return multierr.Combine(enc.Encode(manifest), enc.Close(), f.Close())
}

func runGenerate(args []string) {
	flagset := flag.NewFlagSet("generate", flag.ExitOnError)
	filepath := flagset.String("file", "node.yaml", "full path of node manifest file to write to")
	if err := flagset.Parse(args); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// Effective config is the RAFT_* environment overlaid on defaults.
	cfg, err := config.Build(nil)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	manifest := nodeManifest{
		NodeID: uuid.New(),
		Config: *cfg,
	}
	if err := writeManifest(*filepath, manifest); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	log.WithFields(log.Fields{
		"node": manifest.NodeID,
		"file": *filepath,
	}).Info("wrote node manifest")
}

func main() {
	initLogging()
	args := os.Args[1:]
	if len(args) < 1 {
		fmt.Printf("usage: %s defaults | check | print | bindings | generate ...\n", os.Args[0])
		os.Exit(2)
	}
	switch args[0] {
	case "defaults":
		runDefaults()
	case "check":
		runCheck(args[1:])
	case "print":
		runPrint(args[1:])
	case "bindings":
		runBindings()
	case "generate":
		runGenerate(args[1:])
	default:
		fmt.Printf("unknown sub-command: %s\n", args[0])
		os.Exit(2)
	}
}
