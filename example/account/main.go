package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hellofresh/streamstore"
	"github.com/hellofresh/streamstore/driver/inmemory"
	prometheusExtension "github.com/hellofresh/streamstore/extension/prometheus"
	zapExtension "github.com/hellofresh/streamstore/extension/zap"
)

type amountChanged struct {
	Amount int `json:"amount"`
}

func main() {
	ctx := context.Background()

	zapLogger, err := zap.NewDevelopment()
	failOnErr(err)
	defer func() {
		_ = zapLogger.Sync()
	}()

	metrics := prometheusExtension.NewMetrics()
	failOnErr(metrics.RegisterMetrics(prometheus.NewRegistry()))

	store := inmemory.NewStreamStore(zapExtension.Wrap(zapLogger), metrics)

	accountStream := "account-" + streamstore.GenerateUUID().String()

	fmt.Printf("Opening account %s\n", accountStream)
	version, err := store.WriteToStream(ctx, accountStream, streamstore.NoStream(), []streamstore.Message{
		{Type: "AccountOpened"},
		deposit(100),
	})
	failOnErr(err)
	fmt.Printf("Account at %s balance %d\n\n", version, balance(ctx, store, accountStream))

	fmt.Print("Depositing 50 with a stale version\n")
	_, err = store.WriteToStream(ctx, accountStream, streamstore.NoStream(), []streamstore.Message{deposit(50)})
	fmt.Printf("Rejected: %v\n\n", err)

	fmt.Print("Withdrawing 30 with retries\n")
	version, err = streamstore.WriteWithRetry(ctx, store, accountStream, 3, func(_ streamstore.StreamVersion, messages []streamstore.StreamMessage) ([]streamstore.Message, error) {
		if sum(messages) < 30 {
			return nil, errors.New("insufficient funds")
		}
		return []streamstore.Message{withdraw(30)}, nil
	})
	failOnErr(err)
	fmt.Printf("Account at %s balance %d\n\n", version, balance(ctx, store, accountStream))

	fmt.Print("History, newest first\n")
	_, messages, err := store.ReadFromStream(ctx, accountStream, streamstore.Backwards)
	failOnErr(err)
	for _, msg := range messages {
		fmt.Printf("%d %s %s\n", msg.Position.Revision, msg.Type, msg.Data)
	}

	categoryMessages, err := store.ReadFromCategory(ctx, streamstore.Category(accountStream), 0, 0)
	failOnErr(err)
	fmt.Printf("\n%d messages in category %s\n", len(categoryMessages), streamstore.Category(accountStream))
}

func deposit(amount int) streamstore.Message {
	return amountMessage("MoneyDeposited", amount)
}

func withdraw(amount int) streamstore.Message {
	return amountMessage("MoneyWithdrawn", amount)
}

func amountMessage(messageType string, amount int) streamstore.Message {
	data, err := json.Marshal(amountChanged{Amount: amount})
	failOnErr(err)

	return streamstore.Message{
		Type:     messageType,
		Data:     data,
		Metadata: []byte(`{"source":"example"}`),
	}
}

func balance(ctx context.Context, store streamstore.StreamReader, streamID string) int {
	_, messages, err := store.ReadFromStream(ctx, streamID, streamstore.Forwards)
	failOnErr(err)

	return sum(messages)
}

func sum(messages []streamstore.StreamMessage) int {
	total := 0
	for _, msg := range messages {
		var payload amountChanged
		switch msg.Type {
		case "MoneyDeposited":
			failOnErr(json.Unmarshal(msg.Data, &payload))
			total += payload.Amount
		case "MoneyWithdrawn":
			failOnErr(json.Unmarshal(msg.Data, &payload))
			total -= payload.Amount
		}
	}

	return total
}

func failOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
