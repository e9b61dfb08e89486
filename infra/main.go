package main

import (
    "github.com/aws/aws-cdk-go/awscdk/v2"
    "github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
    "github.com/aws/aws-cdk-go/awscdk/v2/awscognito"
    "github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
    "github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
    "github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
    "github.com/aws/constructs-go/constructs/v10"
    "github.com/aws/jsii-runtime-go"
)

type ReviewAppStackProps struct {
    awscdk.StackProps
}

func NewReviewAppStack(scope constructs.Construct, id string, props *ReviewAppStackProps) awscdk.Stack {
    var sprops awscdk.StackProps
    if props != nil {
        sprops = props.StackProps
    }
    stack := awscdk.NewStack(scope, &id, &sprops)

    // --------------------
    // data and identity
    // --------------------
    reviewsTable := awsdynamodb.NewTable(stack, jsii.String("ReviewsTable"), &awsdynamodb.TableProps{
        BillingMode:   awsdynamodb.BillingMode_PAY_PER_REQUEST,
        PartitionKey:  &awsdynamodb.Attribute{Name: jsii.String("movieId"), Type: awsdynamodb.AttributeType_NUMBER},
        SortKey:       &awsdynamodb.Attribute{Name: jsii.String("reviewId"), Type: awsdynamodb.AttributeType_NUMBER},
        RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
        TableName:     jsii.String("ReviewsTable"),
    })

    userPool := awscognito.NewUserPool(stack, jsii.String("UserPool"), &awscognito.UserPoolProps{
        SignInAliases:     &awscognito.SignInAliases{Username: jsii.Bool(true), Email: jsii.Bool(true)},
        SelfSignUpEnabled: jsii.Bool(true),
        RemovalPolicy:     awscdk.RemovalPolicy_DESTROY,
    })
    appClient := userPool.AddClient(jsii.String("AppClient"), &awscognito.UserPoolClientOptions{
        AuthFlows: &awscognito.AuthFlow{UserPassword: jsii.Bool(true)},
    })

    // --------------------
    // handler functions
    // --------------------
    handlerEnv := &map[string]*string{
        "STAGE":            jsii.String("prod"),
        "TABLE_NAME":       reviewsTable.TableName(),
        "USER_POOL_ID":     userPool.UserPoolId(),
        "CLIENT_ID":        appClient.UserPoolClientId(),
        "TRANSLATE_REGION": stack.Region(),
    }

    newHandlerFn := func(name string, assetPath string) awslambda.Function {
        return awslambda.NewFunction(stack, jsii.String(name), &awslambda.FunctionProps{
            Runtime:      awslambda.Runtime_PROVIDED_AL2023(),
            Architecture: awslambda.Architecture_ARM_64(),
            Handler:      jsii.String("bootstrap"),
            Code:         awslambda.Code_FromAsset(jsii.String(assetPath), nil),
            Timeout:      awscdk.Duration_Seconds(jsii.Number(10)),
            MemorySize:   jsii.Number(128),
            Environment:  handlerEnv,
        })
    }

    addReviewFn := newHandlerFn("AddReviewFn", "../build/addReviewHandler")
    getReviewsFn := newHandlerFn("GetReviewsFn", "../build/getReviewsHandler")
    updateReviewFn := newHandlerFn("UpdateReviewFn", "../build/updateReviewHandler")
    translationFn := newHandlerFn("TranslationFn", "../build/translationHandler")
    authorizerFn := newHandlerFn("AuthorizerFn", "../build/authorizerHandler")

    reviewsTable.GrantReadWriteData(addReviewFn)
    reviewsTable.GrantReadData(getReviewsFn)
    reviewsTable.GrantReadWriteData(updateReviewFn)
    reviewsTable.GrantReadWriteData(translationFn)

    translationFn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
        Actions:   &[]*string{jsii.String("translate:TranslateText")},
        Resources: &[]*string{jsii.String("*")},
    }))
    addReviewFn.AddToRolePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
        Actions:   &[]*string{jsii.String("secretsmanager:GetSecretValue")},
        Resources: &[]*string{jsii.String("arn:aws:secretsmanager:*:*:secret:ReviewApp/secrets*")},
    }))

    // --------------------
    // REST API
    // --------------------
    api := awsapigateway.NewRestApi(stack, jsii.String("ReviewAppApi"), &awsapigateway.RestApiProps{
        Description:   jsii.String("Review App RestApi"),
        EndpointTypes: &[]awsapigateway.EndpointType{awsapigateway.EndpointType_REGIONAL},
        DefaultCorsPreflightOptions: &awsapigateway.CorsOptions{
            AllowOrigins: awsapigateway.Cors_ALL_ORIGINS(),
        },
    })

    // Token cache is disabled so that revoked credentials fail on the very
    // next request.
    requestAuthorizer := awsapigateway.NewRequestAuthorizer(stack, jsii.String("RequestAuthorizer"), &awsapigateway.RequestAuthorizerProps{
        Handler:         authorizerFn,
        IdentitySources: &[]*string{awsapigateway.IdentitySource_Header(jsii.String("cookie"))},
        ResultsCacheTtl: awscdk.Duration_Minutes(jsii.Number(0)),
    })
    authorized := &awsapigateway.MethodOptions{
        Authorizer:        requestAuthorizer,
        AuthorizationType: awsapigateway.AuthorizationType_CUSTOM,
    }

    movies := api.Root().AddResource(jsii.String("movies"), nil)
    moviesReviews := movies.AddResource(jsii.String("reviews"), nil)
    moviesReviews.AddMethod(jsii.String("POST"), awsapigateway.NewLambdaIntegration(addReviewFn, nil), authorized)

    movie := movies.AddResource(jsii.String("{movieId}"), nil)
    movieReviews := movie.AddResource(jsii.String("reviews"), nil)
    movieReviews.AddMethod(jsii.String("GET"), awsapigateway.NewLambdaIntegration(getReviewsFn, nil), nil)

    movieReview := movieReviews.AddResource(jsii.String("{reviewId}"), nil)
    movieReview.AddMethod(jsii.String("PUT"), awsapigateway.NewLambdaIntegration(updateReviewFn, nil), authorized)

    reviews := api.Root().AddResource(jsii.String("reviews"), nil)
    reviewById := reviews.AddResource(jsii.String("{reviewId}"), nil)
    reviewMovie := reviewById.AddResource(jsii.String("{movieId}"), nil)
    translation := reviewMovie.AddResource(jsii.String("translation"), nil)
    translation.AddMethod(jsii.String("GET"), awsapigateway.NewLambdaIntegration(translationFn, nil), nil)

    awscdk.NewCfnOutput(stack, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{Value: api.Url()})
    awscdk.NewCfnOutput(stack, jsii.String("UserPoolId"), &awscdk.CfnOutputProps{Value: userPool.UserPoolId()})
    awscdk.NewCfnOutput(stack, jsii.String("UserPoolClientId"), &awscdk.CfnOutputProps{Value: appClient.UserPoolClientId()})

    return stack
}

func main() {
    defer jsii.Close()

    app := awscdk.NewApp(nil)

    NewReviewAppStack(app, "ReviewAppStack", &ReviewAppStackProps{})

    app.Synth(nil)
}
