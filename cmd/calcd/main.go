package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avdeyev/calckit/internal/config"
	"github.com/avdeyev/calckit/internal/storage"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	configPtr := flag.String("config", "", "path to toml config file")
	hostPtr := flag.String("host", "", "host of server, overrides config")
	portPtr := flag.Int("port", 0, "port of server, overrides config")
	dbPtr := flag.String("db", "", "path to sqlite database, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *hostPtr != "" {
		cfg.Host = *hostPtr
	}
	if *portPtr != 0 {
		cfg.Port = *portPtr
	}
	if *dbPtr != "" {
		cfg.DatabasePath = *dbPtr
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err := db.PingContext(context.TODO()); err != nil {
		panic(err)
	}
	if err := storage.CreateTables(context.TODO(), db); err != nil {
		panic(err)
	}

	go func() {
		fmt.Printf("run calc server at %s:%d\n", cfg.Host, cfg.Port)
		s := storage.GetServer(cfg, db)
		s.ListenAndServe()
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	fmt.Println("stop calc server")
}
