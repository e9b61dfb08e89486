package middleware

import (
    "context"
    "os"

    "github.com/aws/aws-lambda-go/events"
    "github.com/aws/aws-sdk-go-v2/aws"
    "github.com/aws/aws-sdk-go-v2/config"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    enum2 "github.com/veerajagannadham/Review-app/src/pkg/middleware/enum"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
)

const metricNamespace = "ReviewApp"

var (
    _log = logger.NewLogger()
)

func MetricMiddleware(handlerName enum.HandlerName,
    handler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
    return func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
        var response events.APIGatewayProxyResponse
        var err error

        // Use defer to ensure metric emission even in case of panic
        defer func() {
            r := recover()
            if r != nil {
                _log.Infof("Emitting 5XXError metric due to panic")
                EmitMetric(enum2.Metric5xxError, handlerName, 1.0)
                panic(r)
            } else {
                if response.StatusCode >= 400 && response.StatusCode < 500 {
                    _log.Infof("Emitting 4XXError metric")
                    EmitMetric(enum2.Metric4xxError, handlerName, 1.0)
                } else if response.StatusCode >= 500 {
                    _log.Infof("Emitting 5XXError metric")
                    EmitMetric(enum2.Metric5xxError, handlerName, 1.0)
                }
            }
        }()

        response, err = handler(ctx, request)
        return response, err
    }
}

func EmitMetric(metricName enum2.Metric, handlerName enum.HandlerName, value float64) {
    region := os.Getenv(util.RegionEnvKey)
    if region == "" {
        region = util.DefaultRegion
    }

    cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
    if err != nil {
        _log.Error("Error loading AWS config: ", err)
    }
    svc := cloudwatch.NewFromConfig(cfg)
    _, err = svc.PutMetricData(context.TODO(), &cloudwatch.PutMetricDataInput{
        Namespace: aws.String(metricNamespace),
        MetricData: []types.MetricDatum{
            {
                MetricName: aws.String(metricName.String()),
                Dimensions: []types.Dimension{
                    {
                        Name:  aws.String("FunctionName"),
                        Value: aws.String(handlerName.String()),
                    },
                },
                Unit:  types.StandardUnitCount,
                Value: aws.Float64(value),
            },
        },
    })
    if err != nil {
        _log.Error("Error emitting metric: ", err)
    }
}
