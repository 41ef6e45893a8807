package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"zesc_server/logic"
	"zesc_server/network"
	"zesc_server/storage"
)

const defaultRoom = "alpha_1"

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig(env logic.Env) (*logic.GameConfig, error) {
	cfg, err := logic.LoadGameConfig(env.ConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = logic.DefaultGameConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	if env.Map != "" {
		cfg.Map.Name = env.Map
	}
	logic.ClampGameConfig(cfg)
	return cfg, nil
}

// persistRoom wires a room to the rotation checkpoint and the kick log.
func persistRoom(store *storage.Store, log *zap.Logger) func(*network.Room) {
	return func(room *network.Room) {
		rot, ok, err := store.LoadRotation(room.ID)
		if err != nil {
			log.Warn("rotation checkpoint unreadable", zap.String("room", room.ID), zap.Error(err))
		} else if ok {
			room.GameLoop.Restore(logic.RotationState{
				Map:           rot.Map,
				RoundCount:    rot.RoundCount,
				LastInfected:  rot.LastInfected,
				LastInfected2: rot.LastInfected2,
			})
			log.Info("rotation restored", zap.String("room", room.ID), zap.String("map", rot.Map))
		}

		room.GameLoop.OnRotate = func(st logic.RotationState) {
			err := store.SaveRotation(room.ID, storage.Rotation{
				Map:           st.Map,
				RoundCount:    st.RoundCount,
				LastInfected:  st.LastInfected,
				LastInfected2: st.LastInfected2,
			})
			if err != nil {
				log.Warn("saving rotation", zap.Error(err))
			}
		}
		room.OnKick = func(p logic.Player, reason string) {
			if _, err := store.RecordKick(room.ID, p.SessionID, p.Name, reason); err != nil {
				log.Warn("recording kick", zap.Error(err))
			}
		}
	}
}

func main() {
	env, err := logic.LoadEnv()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(env.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	logic.Logger = logger

	cfg, err := loadConfig(env)
	if err != nil {
		logger.Fatal("loading config", zap.String("path", env.ConfigPath), zap.Error(err))
	}

	store, err := storage.Open(env.DBPath)
	if err != nil {
		logger.Fatal("opening storage", zap.String("path", env.DBPath), zap.Error(err))
	}
	defer store.Close()

	rooms := network.NewRoomManager()
	rooms.CreateRoom(defaultRoom, "Zombie Escape", cfg, persistRoom(store, logger))

	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("room")
		if id == "" {
			id = defaultRoom
		}
		room := rooms.GetRoom(id)
		if room == nil {
			http.Error(w, "unknown room", http.StatusNotFound)
			return
		}
		network.ServeWs(room, w, r)
	})

	mux.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rooms.ListRooms()); err != nil {
			logger.Warn("encoding room list", zap.Error(err))
		}
	})

	// Health Check Endpoint (For future load balancers/k8s)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	logger.Info("zesc server listening", zap.String("addr", env.Addr), zap.String("map", cfg.Map.Name))
	if err := http.ListenAndServe(env.Addr, mux); err != nil {
		logger.Fatal("ListenAndServe", zap.Error(err))
	}
}
