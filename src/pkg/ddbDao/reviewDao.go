package ddbDao

import (
    "fmt"
    "time"

    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/awserr"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
    "github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
    "github.com/aws/aws-sdk-go/service/dynamodb/expression"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/jsonUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
    "go.uber.org/zap"
)

const KeyNotExistsConditionExpression = "attribute_not_exists(movieId) AND attribute_not_exists(reviewId)"

// firstReviewId leaves room below for the 1000-series seed rows.
const firstReviewId = 1001

// maxAddReviewAttempts bounds the re-allocation loop when a concurrent writer
// claims the same reviewId. Uniqueness is enforced by the conditional write,
// not by the allocation query.
const maxAddReviewAttempts = 3

type ReviewDao struct {
    client    dynamodbiface.DynamoDBAPI
    tableName string
    log       *zap.SugaredLogger
}

func NewReviewDao(client dynamodbiface.DynamoDBAPI, tableName string, logger *zap.SugaredLogger) *ReviewDao {
    return &ReviewDao{
        client:    client,
        tableName: tableName,
        log:       logger,
    }
}

// GetNextReviewId returns the smallest unassigned reviewId for the given movie.
func (d *ReviewDao) GetNextReviewId(movieId int64) (int64, error) {
    expr, err := expression.NewBuilder().
        WithKeyCondition(expression.Key("movieId").Equal(expression.Value(movieId))).Build()
    if err != nil {
        d.log.Errorf("Unable to build key condition expression for GetNextReviewId with movieId %d: %v", movieId, err)
        return 0, err
    }

    result, err := d.client.Query(&dynamodb.QueryInput{
        TableName:                 aws.String(d.tableName),
        KeyConditionExpression:    expr.KeyCondition(),
        ExpressionAttributeNames:  expr.Names(),
        ExpressionAttributeValues: expr.Values(),
        ScanIndexForward:          aws.Bool(false), // get largest
        Limit:                     aws.Int64(1),
    })
    if err != nil {
        d.log.Errorf("Unable to execute query in GetNextReviewId with movieId %d: %v", movieId, err)
        return 0, exception.NewUnknownDDBException(fmt.Sprintf("GetNextReviewId query failed for movieId %d: ", movieId), err)
    }

    if len(result.Items) == 0 {
        return firstReviewId, nil
    }

    var review model.Review
    err = dynamodbattribute.UnmarshalMap(result.Items[0], &review)
    if err != nil {
        d.log.Errorf("Unable to unmarshal the first query result in GetNextReviewId with query response %s: %v", jsonUtil.AnyToJson(result.Items[0]), err)
        return 0, err
    }

    return review.ReviewId + 1, nil
}

// AddReview allocates a reviewId, stamps today's date and persists the review.
// The conditional put rejects a reviewId claimed by a concurrent writer, in
// which case allocation is retried.
func (d *ReviewDao) AddReview(movieId int64, content string, reviewerId string) (model.Review, error) {
    if util.IsEmptyString(content) {
        return model.Review{}, exception.NewInvalidReviewException("content must not be empty")
    }

    var lastErr error
    for attempt := 0; attempt < maxAddReviewAttempts; attempt++ {
        nextReviewId, err := d.GetNextReviewId(movieId)
        if err != nil {
            return model.Review{}, err
        }

        review, err := model.NewReview(movieId, nextReviewId, reviewerId, content)
        if err != nil {
            d.log.Error("AddReview failed due to invalid review: ", err)
            return model.Review{}, exception.NewInvalidReviewExceptionWithErr("invalid review", err)
        }

        av, err := dynamodbattribute.MarshalMap(review)
        if err != nil {
            return model.Review{}, err
        }

        _, err = d.client.PutItem(&dynamodb.PutItemInput{
            TableName:           aws.String(d.tableName),
            Item:                av,
            ConditionExpression: aws.String(KeyNotExistsConditionExpression),
        })
        if err == nil {
            return review, nil
        }

        if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
            d.log.Infof("reviewId %d for movieId %d was claimed concurrently, re-allocating", nextReviewId, movieId)
            lastErr = err
            continue
        }

        d.log.Error("AddReview PutItem failed for unknown reason: ", jsonUtil.AnyToJson(err))
        return model.Review{}, exception.NewUnknownDDBException("AddReview PutItem failed for unknown reason: ", err)
    }

    return model.Review{}, exception.NewReviewAlreadyExistException(
        fmt.Sprintf("AddReview for movieId %d gave up after %d conflicting allocations", movieId, maxAddReviewAttempts), lastErr)
}

// GetReviews returns all reviews for a movie. An empty slice is not an error;
// the caller decides whether that is a NotFound condition.
func (d *ReviewDao) GetReviews(movieId int64) ([]model.Review, error) {
    expr, err := expression.NewBuilder().
        WithKeyCondition(expression.Key("movieId").Equal(expression.Value(movieId))).Build()
    if err != nil {
        d.log.Errorf("Unable to build key condition expression for GetReviews with movieId %d: %v", movieId, err)
        return nil, err
    }

    reviews := []model.Review{}
    var exclusiveStartKey map[string]*dynamodb.AttributeValue
    for {
        result, err := d.client.Query(&dynamodb.QueryInput{
            TableName:                 aws.String(d.tableName),
            KeyConditionExpression:    expr.KeyCondition(),
            ExpressionAttributeNames:  expr.Names(),
            ExpressionAttributeValues: expr.Values(),
            ExclusiveStartKey:         exclusiveStartKey,
        })
        if err != nil {
            d.log.Errorf("Unable to execute query in GetReviews with movieId %d: %v", movieId, err)
            return nil, exception.NewUnknownDDBException(fmt.Sprintf("GetReviews query failed for movieId %d: ", movieId), err)
        }

        var page []model.Review
        err = dynamodbattribute.UnmarshalListOfMaps(result.Items, &page)
        if err != nil {
            return nil, fmt.Errorf("failed to unmarshal reviews for movieId %d: %v", movieId, err)
        }
        reviews = append(reviews, page...)

        if result.LastEvaluatedKey == nil {
            return reviews, nil
        }
        exclusiveStartKey = result.LastEvaluatedKey
    }
}

// GetReview fetches a single review.
// Returns ReviewDoesNotExistException when no row matches.
func (d *ReviewDao) GetReview(movieId int64, reviewId int64) (model.Review, error) {
    key, err := dynamodbattribute.MarshalMap(map[string]interface{}{
        "movieId":  movieId,
        "reviewId": reviewId,
    })
    if err != nil {
        return model.Review{}, err
    }

    result, err := d.client.GetItem(&dynamodb.GetItemInput{
        TableName: aws.String(d.tableName),
        Key:       key,
    })
    if err != nil {
        d.log.Debugf("GetReview failed for movieId %d reviewId %d: %s", movieId, reviewId, jsonUtil.AnyToJson(err))
        return model.Review{}, exception.NewUnknownDDBException(fmt.Sprintf("GetReview failed for movieId %d reviewId %d with unknown error: ", movieId, reviewId), err)
    }

    if result.Item == nil {
        return model.Review{}, exception.NewReviewDoesNotExistException(fmt.Sprintf("Review with movieId %d reviewId %d not found", movieId, reviewId))
    }

    review := &model.Review{}
    err = dynamodbattribute.UnmarshalMap(result.Item, review)
    if err != nil {
        return model.Review{}, fmt.Errorf("failed to unmarshal Review, %v", err)
    }

    err = model.ValidateReview(review)
    if err != nil {
        return model.Review{}, fmt.Errorf("invalid review fetched: %v", err)
    }

    return *review, nil
}

// UpdateReviewContent rewrites content and reviewDate of an existing review.
// Only the original reviewer may update; the ownership check happens before
// any write. The load-check-write sequence is not atomic against a concurrent
// update by the same author; the later write wins.
func (d *ReviewDao) UpdateReviewContent(movieId int64, reviewId int64, content string, requestorId string) (model.Review, error) {
    if util.IsEmptyString(content) {
        return model.Review{}, exception.NewInvalidReviewException("content must not be empty")
    }

    review, err := d.GetReview(movieId, reviewId)
    if err != nil {
        return model.Review{}, err
    }

    if review.ReviewerId != requestorId {
        return model.Review{}, exception.NewForbiddenException(
            fmt.Sprintf("review %d of movie %d belongs to %s, not %s", reviewId, movieId, review.ReviewerId, requestorId))
    }

    reviewDate := util.GetFormattedDate(time.Now())
    update := expression.Set(
        expression.Name("content"),
        expression.Value(content),
    ).Set(
        expression.Name("reviewDate"),
        expression.Value(reviewDate),
    )
    expr, err := expression.NewBuilder().
        WithUpdate(update).
        Build()
    if err != nil {
        d.log.Errorf("Unable to build expression for UpdateItem in UpdateReviewContent: %v", err)
        return model.Review{}, err
    }

    key, err := dynamodbattribute.MarshalMap(map[string]interface{}{
        "movieId":  movieId,
        "reviewId": reviewId,
    })
    if err != nil {
        return model.Review{}, err
    }

    ddbInput := &dynamodb.UpdateItemInput{
        TableName:                 aws.String(d.tableName),
        Key:                       key,
        UpdateExpression:          expr.Update(),
        ExpressionAttributeNames:  expr.Names(),
        ExpressionAttributeValues: expr.Values(),
    }
    _, err = d.client.UpdateItem(ddbInput)
    if err != nil {
        d.log.Errorf("UpdateItem failed in UpdateReviewContent with input '%s': %v", jsonUtil.AnyToJson(ddbInput), err)
        return model.Review{}, exception.NewUnknownDDBException("UpdateReviewContent UpdateItem failed: ", err)
    }

    review.Content = content
    review.ReviewDate = reviewDate
    return review, nil
}

// AddTranslation stores one translated text under reviewTranslation.<language>.
// The targeted SET leaves every other language, content and reviewDate alone.
// Writes for the same (review, language) are last-write-wins; concurrent
// first-time translations produce equivalent text, so this is acceptable.
func (d *ReviewDao) AddTranslation(movieId int64, reviewId int64, language string, text string) error {
    update := expression.Set(
        expression.Name("reviewTranslation."+language),
        expression.Value(text),
    )
    expr, err := expression.NewBuilder().
        WithUpdate(update).
        WithCondition(expression.AttributeExists(expression.Name("movieId"))).
        Build()
    if err != nil {
        d.log.Errorf("Unable to build expression for UpdateItem in AddTranslation: %v", err)
        return err
    }

    key, err := dynamodbattribute.MarshalMap(map[string]interface{}{
        "movieId":  movieId,
        "reviewId": reviewId,
    })
    if err != nil {
        return err
    }

    _, err = d.client.UpdateItem(&dynamodb.UpdateItemInput{
        TableName:                 aws.String(d.tableName),
        Key:                       key,
        UpdateExpression:          expr.Update(),
        ConditionExpression:       expr.Condition(),
        ExpressionAttributeNames:  expr.Names(),
        ExpressionAttributeValues: expr.Values(),
    })
    if err == nil {
        return nil
    }

    if awsErr, ok := err.(awserr.Error); ok {
        switch awsErr.Code() {
        case dynamodb.ErrCodeConditionalCheckFailedException:
            return exception.NewReviewDoesNotExistException(fmt.Sprintf("Review with movieId %d reviewId %d not found", movieId, reviewId))
        case "ValidationException":
            // legacy row without a reviewTranslation map; create it with this
            // single entry, guarded so an existing map is never clobbered
            return d.addTranslationToLegacyRow(key, movieId, reviewId, language, text)
        }
    }

    d.log.Errorf("UpdateItem failed in AddTranslation for movieId %d reviewId %d language %s: %v", movieId, reviewId, language, err)
    return exception.NewUnknownDDBException("AddTranslation UpdateItem failed: ", err)
}

func (d *ReviewDao) addTranslationToLegacyRow(key map[string]*dynamodb.AttributeValue, movieId int64, reviewId int64, language string, text string) error {
    update := expression.Set(
        expression.Name("reviewTranslation"),
        expression.Value(map[string]string{language: text}),
    )
    expr, err := expression.NewBuilder().
        WithUpdate(update).
        WithCondition(expression.AttributeNotExists(expression.Name("reviewTranslation"))).
        Build()
    if err != nil {
        return err
    }

    _, err = d.client.UpdateItem(&dynamodb.UpdateItemInput{
        TableName:                 aws.String(d.tableName),
        Key:                       key,
        UpdateExpression:          expr.Update(),
        ConditionExpression:       expr.Condition(),
        ExpressionAttributeNames:  expr.Names(),
        ExpressionAttributeValues: expr.Values(),
    })
    if err != nil {
        if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == dynamodb.ErrCodeConditionalCheckFailedException {
            // another writer created the map in between; retry the targeted SET
            return d.AddTranslation(movieId, reviewId, language, text)
        }
        d.log.Errorf("Legacy-row translation write failed for movieId %d reviewId %d: %v", movieId, reviewId, err)
        return exception.NewUnknownDDBException("AddTranslation legacy-row write failed: ", err)
    }

    return nil
}
