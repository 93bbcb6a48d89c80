package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"

	"helix/api/grpcserver"
	pb "helix/api/pb"

	"helix/domain/orderbook"
	"helix/infra/kafka"
	"helix/infra/outbox"
	"helix/infra/reclaim"
	"helix/infra/sequence"
	"helix/infra/slotpool"
	"helix/infra/wal"
	"helix/jobs/broadcaster"
	"helix/service"
	"helix/snapshot"
)

func main() {
	var (
		listenAddr = flag.String("listen", ":50051", "gRPC listen address")
		walDir     = flag.String("wal-dir", "./data/wal", "intent log directory")
		outboxDir  = flag.String("outbox-dir", "./data/outbox", "execution outbox directory")
		snapDir    = flag.String("snapshot-dir", "./data/snapshot", "snapshot directory")
		poolCap    = flag.Int("pool-capacity", 1<<20, "order slot pool capacity")
		ringSize   = flag.Uint64("retire-ring", 1<<18, "retire ring size (power of two)")
		epochEvery = flag.Duration("epoch-interval", 2*time.Second, "reclamation interval")
		snapEvery  = flag.Duration("snapshot-interval", time.Minute, "snapshot interval")
		brokers    = flag.String("brokers", "", "comma-separated Kafka brokers (empty disables)")
		execTopic  = flag.String("exec-topic", "executions", "execution topic")
		tickTopic  = flag.String("tick-topic", "ticks", "market data topic")
		sweepEvery = flag.Duration("sweep-interval", 2*time.Second, "outbox sweep interval")
	)
	flag.Parse()

	// ---------------- Memory ----------------

	pool, err := slotpool.New[orderbook.Order](*poolCap)
	if err != nil {
		log.Fatalf("pool init failed: %v", err)
	}
	rec := reclaim.New(*ringSize)
	book := service.NewBook(rec)
	seqGen := sequence.New(0)

	// ---------------- Recovery ----------------

	snapSeq, err := snapshot.Load(*snapDir, book, pool)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}
	if err := service.ReplayFromWAL(*walDir, snapSeq, book, pool, seqGen); err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}
	rec.Advance() // drop slots retired during replay; no readers yet

	// ---------------- Durability ----------------

	w, err := wal.Open(wal.Config{Dir: *walDir})
	if err != nil {
		log.Fatalf("WAL init failed: %v", err)
	}
	defer w.Close()

	ob, err := outbox.Open(*outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Market data ----------------

	var ticks service.TickSink
	if *brokers != "" {
		tp := kafka.NewTickPublisher(strings.Split(*brokers, ","), *tickTopic)
		defer tp.Close()
		ticks = tp
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(book, pool, rec, seqGen, w, ob, ticks)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartEpochJob(ctx, *epochEvery)
	svc.StartSnapshotJob(ctx, *snapDir, *snapEvery)

	if *brokers != "" {
		bc, err := broadcaster.Connect(strings.Split(*brokers, ","), ob, *execTopic, *sweepEvery)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		go bc.Run(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(svc))

	fmt.Printf("engine running on %s (pool capacity %d)\n", *listenAddr, pool.Capacity())

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
