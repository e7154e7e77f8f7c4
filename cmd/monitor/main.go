package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"botbase/pkg/domain/model"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
)

type MonitorConfig struct {
	ConfigPath string `split_words:"true" default:"./configs/config.json"`
	Port       int    `default:"8080"`
}

func main() {
	log.Println("===== START PROGRAM ====================")
	defer log.Println("===== END PROGRAM ======================")

	var env MonitorConfig
	if err := envconfig.Process("MONITOR", &env); err != nil {
		log.Fatal(err.Error())
	}

	conf, err := model.LoadConfig(env.ConfigPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	r := mux.NewRouter()
	r.HandleFunc("/", daysHandler(conf)).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{day:[0-9]{6}}", ordersHandler(conf)).Methods(http.MethodGet)

	log.Printf("listening on :%d\n", env.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", env.Port), r); err != nil {
		log.Fatal(err.Error())
	}
}

// daysHandler 発注履歴がある日付の一覧を返す
func daysHandler(conf *model.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := fmt.Sprintf("%s_%s_order_history_", conf.ExchangeName, conf.BotName)
		paths, err := filepath.Glob(filepath.Join(conf.LogDir, prefix+"*.csv"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		days := []string{}
		for _, p := range paths {
			name := filepath.Base(p)
			day := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".csv")
			days = append(days, day)
		}

		writeJSON(w, days)
	}
}

// ordersHandler 指定日の発注履歴を返す
func ordersHandler(conf *model.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day := mux.Vars(r)["day"]
		name := fmt.Sprintf("%s_%s_order_history_%s.csv", conf.ExchangeName, conf.BotName, day)
		path := filepath.Join(conf.LogDir, name)

		fp, err := os.Open(path)
		if err != nil {
			http.Error(w, "order history is not found", http.StatusNotFound)
			return
		}
		defer fp.Close()

		rows, err := csv.NewReader(fp).ReadAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		records := []map[string]string{}
		if len(rows) > 0 {
			columns := rows[0]
			for _, row := range rows[1:] {
				record := map[string]string{}
				for i, c := range columns {
					if i < len(row) {
						record[c] = row[i]
					}
				}
				records = append(records, record)
			}
		}

		writeJSON(w, records)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response, %v\n", err)
	}
}
