package main

import (
    "context"
    "strconv"

    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-lambda-go/lambda"
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "github.com/google/uuid"
    "github.com/veerajagannadham/Review-app/src/pkg/config"
    "github.com/veerajagannadham/Review-app/src/pkg/ddbDao"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/jsonUtil"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    "github.com/veerajagannadham/Review-app/src/pkg/middleware"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
)

var jsonHeaders = map[string]string{"content-type": "application/json"}

func main() {
    lambda.Start(middleware.MetricMiddleware(enum.HandlerNameGetReviewsHandler, handleRequest))
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
    log := logger.NewLogger().With("requestId", uuid.NewString())
    cfg, err := config.NewConfig()
    if err != nil {
        log.Error("Error resolving config: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Service misconfigured"}`, StatusCode: 500}, nil
    }
    log.Infof("Received request in %s: %s", cfg.Stage, jsonUtil.AnyToJson(request))

    // --------------------
    // parse path and query
    // --------------------
    movieId, err := strconv.ParseInt(request.PathParameters["movieId"], 10, 64)
    if err != nil {
        log.Error("Invalid movieId path parameter: ", err)
        return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid movieId"}`, StatusCode: 400}, nil
    }

    mySession := session.Must(session.NewSession())
    reviewDao := ddbDao.NewReviewDao(dynamodb.New(mySession, aws.NewConfig().WithRegion(cfg.Region)), cfg.ReviewsTableName, log)

    // optional reviewId filter narrows the response to a single review
    var reviews []model.Review
    if reviewIdParam, ok := request.QueryStringParameters["reviewId"]; ok {
        reviewId, err := strconv.ParseInt(reviewIdParam, 10, 64)
        if err != nil {
            log.Error("Invalid reviewId query parameter: ", err)
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Invalid reviewId"}`, StatusCode: 400}, nil
        }

        review, err := reviewDao.GetReview(movieId, reviewId)
        if err != nil {
            log.Error("Error getting review: ", err)

            switch err.(type) {
            case *exception.ReviewDoesNotExistException:
                return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Review not found"}`, StatusCode: 404}, nil
            default:
                return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error getting review"}`, StatusCode: 500}, nil
            }
        }
        reviews = []model.Review{review}
    } else {
        reviews, err = reviewDao.GetReviews(movieId)
        if err != nil {
            log.Error("Error getting reviews: ", err)
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "Error getting reviews"}`, StatusCode: 500}, nil
        }
        if len(reviews) == 0 {
            log.Infof("No reviews found for movie %d", movieId)
            return events.APIGatewayProxyResponse{Headers: jsonHeaders, Body: `{"message": "No reviews found for movie"}`, StatusCode: 404}, nil
        }
    }

    return events.APIGatewayProxyResponse{
        Headers:    jsonHeaders,
        Body:       jsonUtil.AnyToJson(model.GetReviewsResponse{Reviews: reviews}),
        StatusCode: 200,
    }, nil
}
