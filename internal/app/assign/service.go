package assign

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"bitbucket.org/airenas/devtasks/internal/pkg/cmdapp"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type serviceMetric struct {
	assignResponseDur prometheus.ObserverVec
	solveDur          prometheus.Observer
	assigned          prometheus.Gauge
	wsConnections     prometheus.Gauge
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Developers       DeveloperProvider
	Tasks            TaskProvider
	Names            NameProvider
	Solver           Solver
	EventChannelFunc eventChannelFunc

	Port    int
	health  healthcheck.Handler
	metrics serviceMetric
	hub     *wsHub
}

//StartWebServer starts the HTTP service and listens for the requests
func StartWebServer(data *ServiceData) error {
	if data.EventChannelFunc != nil {
		cmdapp.Log.Infof("Listen %s events", tasksExchange())
		qc := make(chan struct{})
		defer close(qc)
		go registerQueue(data, qc, newReconnectBackOff())
	}

	cmdapp.Log.Infof("Starting HTTP service at %d", data.Port)
	r := NewRouter(data)

	portStr := strconv.Itoa(data.Port)
	srv := http.Server{
		Addr:              ":" + portStr,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		Handler:           r,
	}

	w := cmdapp.Log.Writer()
	defer w.Close()
	l := log.New(w, "", 0)
	gracehttp.SetLogger(l)

	return gracehttp.Serve(&srv)
}

//NewRouter creates the router for HTTP service
func NewRouter(data *ServiceData) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	ah := promhttp.InstrumentHandlerDuration(data.metrics.assignResponseDur, assignmentsHandler{data: data})
	router.Methods("GET").Path("/assignments").Handler(ah)
	router.Handle("/subscribe", websocketHandler{data: data})
	router.Methods("GET").Path("/metrics").Handler(promhttp.Handler())
	router.Methods("GET").Path("/live").HandlerFunc(data.health.LiveEndpoint)
	router.Methods("GET").Path("/ready").HandlerFunc(data.health.ReadyEndpoint)
	return router
}

type assignmentsHandler struct {
	data *ServiceData
}

func (h assignmentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("Request from %s", r.Host)

	res, err := calcAssignments(h.data)
	if err != nil {
		http.Error(w, "Can't calculate assignments", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Can not prepare result", http.StatusInternalServerError)
		cmdapp.Log.Error(err)
	}
}

type websocketHandler struct {
	data *ServiceData
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	}}

func (h websocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cmdapp.Log.Infof("ws request from %s", r.Host)

	c, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		cmdapp.Log.Error(err)
		return
	}
	res := h.data.hub.lastResult()
	if res == nil {
		if res, err = calcAssignments(h.data); err != nil {
			cmdapp.Log.Error(err)
		}
	}
	if err := h.data.hub.add(c, res); err != nil {
		cmdapp.Log.Error(err)
		cmdapp.LogIf(c.Close())
		return
	}
	h.data.metrics.wsConnections.Set(float64(h.data.hub.count()))
	go func() {
		handleConnection(h.data.hub, c)
		h.data.metrics.wsConnections.Set(float64(h.data.hub.count()))
	}()
}
