package service

// User facing messages of VerificationResult.
const (
	msgMissingUserID       = "No account was provided for face verification."
	msgAccountTerminated   = "Account has been terminated due to security violations."
	msgNoFaceDetected      = "No face detected. Please ensure your face is clearly visible."
	msgMultipleFaces       = "Multiple faces detected. Please make sure only your face is in the frame."
	msgUnreadableFrame     = "The captured image could not be processed. Please try again."
	msgUnexpectedEmbedding = "Face data could not be compared. Please register your face again."
	msgEnrolled            = "Face registered successfully"
	msgEnrollUnavailable   = "Face registration failed. Please try again."
	msgDuplicateFace       = "Duplicate face detected. The account first registered with this face has been terminated. Only the first registered account is allowed."
	msgNotEnrolled         = "No registered face found. Please register your face first."
	msgVerified            = "Face verified successfully (%d%% match)"
	msgVerificationFailed  = "Face verification failed (%d%% match). Please try again or use alternate authentication."
	msgVerifyUnavailable   = "Face verification failed. Please try again."
)

// Operation names reported to the OutcomeRecorder.
const (
	OperationEnroll = "enroll"
	OperationVerify = "verify"
)
