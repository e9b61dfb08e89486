package util

const (
    StageEnvKey           = "STAGE"
    RegionEnvKey          = "AWS_REGION"
    TableNameEnvKey       = "TABLE_NAME"
    UserPoolIdEnvKey      = "USER_POOL_ID"
    ClientIdEnvKey        = "CLIENT_ID"
    TranslateRegionEnvKey = "TRANSLATE_REGION"
)

const (
    DefaultRegion    = "eu-west-1"
    DefaultTableName = "ReviewsTable"
)

// AnonymousReviewerId is the reviewer identity recorded when no identity was
// presented. It only appears in seed data; the POST route requires a token.
const AnonymousReviewerId = "anonymous"
