package main

import (
    "context"
    "os"

    "github.com/aws/aws-sdk-go-v2/config"
    "github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
    "github.com/aws/aws-sdk-go-v2/service/dynamodb"
    "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
)

// Seeds the reviews table with a small fixture set for manual testing.
// Run once after deploying a fresh stack.
func main() {
    log := logger.NewLogger()

    region := os.Getenv(util.RegionEnvKey)
    if region == "" {
        region = util.DefaultRegion
    }
    tableName := os.Getenv(util.TableNameEnvKey)
    if tableName == "" {
        tableName = util.DefaultTableName
    }

    reviews := []model.Review{
        {MovieId: 1, ReviewId: 101, ReviewerId: "user1@example.com", ReviewDate: "01-10-2023", Content: "A gripping story with stellar performances.", Translations: map[string]string{}},
        {MovieId: 1, ReviewId: 102, ReviewerId: "user2@example.com", ReviewDate: "02-10-2023", Content: "Beautifully shot, though the pacing drags in the middle.", Translations: map[string]string{}},
        {MovieId: 2, ReviewId: 103, ReviewerId: "user3@example.com", ReviewDate: "03-10-2023", Content: "An instant classic. I would watch it again tonight.", Translations: map[string]string{}},
        {MovieId: 3, ReviewId: 104, ReviewerId: "user4@example.com", ReviewDate: "04-10-2023", Content: "The soundtrack carries the whole film.", Translations: map[string]string{}},
        {MovieId: 4, ReviewId: 105, ReviewerId: "user5@example.com", ReviewDate: "05-10-2023", Content: "Not for everyone, but the ending stayed with me for days.", Translations: map[string]string{}},
    }

    cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
    if err != nil {
        log.Fatal("Error loading AWS config: ", err)
    }
    client := dynamodb.NewFromConfig(cfg)

    writeRequests := make([]types.WriteRequest, len(reviews))
    for i, review := range reviews {
        item, err := attributevalue.MarshalMap(review)
        if err != nil {
            log.Fatalf("Error marshalling review %d: %v", review.ReviewId, err)
        }
        writeRequests[i] = types.WriteRequest{PutRequest: &types.PutRequest{Item: item}}
    }

    output, err := client.BatchWriteItem(context.TODO(), &dynamodb.BatchWriteItemInput{
        RequestItems: map[string][]types.WriteRequest{tableName: writeRequests},
    })
    if err != nil {
        log.Fatal("Error writing seed reviews: ", err)
    }
    if unprocessed := len(output.UnprocessedItems[tableName]); unprocessed > 0 {
        log.Warnf("%d seed reviews were not processed, re-run to retry", unprocessed)
    }

    log.Infof("Seeded %d reviews into %s", len(reviews)-len(output.UnprocessedItems[tableName]), tableName)
}
