package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/sallyverif/slq/logger"
	apirouterv1 "github.com/sallyverif/slq/router"
	"github.com/sallyverif/slq/verifier/service"
)

const version = "0.1.0"

var appFlags CommandLineFlags

// params for Flags
type CommandLineFlags struct {
	HttpHost        *string `json:"http_host"`
	HttpPort        *int    `json:"http_port"`
	LogLevel        *string `json:"log_level"`
	LogJson         *bool   `json:"log_json"`
	LogFile         *string `json:"log_file"`
	Query           *string `json:"query"`
	Strict          *bool   `json:"strict"`
	ShowVersion     *bool   `json:"version"`
	ShowHelpMessage *bool   `json:"help"`
}

/* init flags */
func initFlags() {
	appFlags.HttpHost = flag.String("http.host", stringEnv("HTTP_HOST", "0.0.0.0"), "HTTP listen host")
	appFlags.HttpPort = flag.Int("http.port", intEnv("HTTP_PORT", 3112), "HTTP listen port")
	appFlags.LogLevel = flag.String("log.level", stringEnv("LOG_LEVEL", "info"), "log level")
	appFlags.LogJson = flag.Bool("log.json", boolEnv("LOG_JSON"), "log as JSON")
	appFlags.LogFile = flag.String("log.file", stringEnv("LOG_FILE", ""), "log file path, stdout if empty")
	appFlags.Query = flag.String("query", "", "parse a single query, print the result and exit")
	appFlags.Strict = flag.Bool("strict", false, "with -query: also run engine-side validation")
	appFlags.ShowVersion = flag.Bool("version", false, "show version")
	appFlags.ShowHelpMessage = flag.Bool("help", false, "show help")
	flag.Parse()
}

func stringEnv(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func intEnv(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	iVal, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return iVal
}

func boolEnv(key string) bool {
	val := os.Getenv(key)
	for _, v := range []string{"true", "1", "yes", "y"} {
		if v == val {
			return true
		}
	}
	return false
}

func runOnce(text string, strict bool) int {
	qs := &service.QueryService{}
	res, err := qs.ParseQuery(text, strict)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	enc, err := res.Query.MarshalJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(string(enc))
	fmt.Println(res.Canonical)
	for _, issue := range res.Issues {
		fmt.Fprintln(os.Stderr, "warning: ", issue)
	}
	return 0
}

func main() {
	initFlags()

	if *appFlags.ShowHelpMessage {
		flag.Usage()
		os.Exit(0)
	}
	if *appFlags.ShowVersion {
		fmt.Printf("slq %s\n", version)
		os.Exit(0)
	}

	if *appFlags.Query != "" {
		os.Exit(runOnce(*appFlags.Query, *appFlags.Strict))
	}

	logger.InitLogger(&logger.Config{
		Level: *appFlags.LogLevel,
		Json:  *appFlags.LogJson,
		File:  *appFlags.LogFile,
	}, nil)

	app := mux.NewRouter()
	apirouterv1.RouteQueryApis(app, version)
	apirouterv1.RouteMiscApis(app, version)

	addr := net.JoinHostPort(*appFlags.HttpHost, strconv.Itoa(*appFlags.HttpPort))
	server := &http.Server{
		Addr:         addr,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Info("slq query service listening on ", addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
