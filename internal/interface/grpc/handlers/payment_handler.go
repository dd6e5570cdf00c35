package handlers

import (
	"context"
	"errors"
	"time"

	pb "github.com/mintgate/payprocd/api-spec/protobuf/gen/go/payproc/v1"
	"github.com/mintgate/payprocd/internal/core/application"
	"github.com/mintgate/payprocd/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type paymentHandler struct {
	pb.UnimplementedPaymentProcessorServer
	svc *application.Service
}

func NewPaymentHandler(svc *application.Service) pb.PaymentProcessorServer {
	return &paymentHandler{svc: svc}
}

func (h *paymentHandler) GetSettings(
	ctx context.Context, req *pb.GetSettingsRequest,
) (*pb.GetSettingsResponse, error) {
	settings, err := h.svc.Settings()
	if err != nil {
		return nil, err
	}
	return &pb.GetSettingsResponse{Inner: settings}, nil
}

func (h *paymentHandler) CreatePayment(
	ctx context.Context, req *pb.CreatePaymentRequest,
) (*pb.CreatePaymentResponse, error) {
	opts, err := parseIncomingOptions(req.GetOptions())
	if err != nil {
		return nil, err
	}

	result, err := h.svc.CreatePayment(ctx, req.GetUnit(), opts)
	if err != nil {
		return nil, toStatusError(err)
	}

	var expiry uint64
	if result.Expiry != nil {
		expiry = uint64(result.Expiry.Unix())
	}
	return &pb.CreatePaymentResponse{
		Identifier: toPaymentIdentifierProto(result.Identifier),
		Request:    result.Request,
		ExpiryUnix: expiry,
	}, nil
}

func (h *paymentHandler) GetPaymentQuote(
	ctx context.Context, req *pb.GetPaymentQuoteRequest,
) (*pb.GetPaymentQuoteResponse, error) {
	if len(req.GetRequest()) <= 0 {
		return nil, status.Error(codes.InvalidArgument, "missing payment request")
	}
	target, err := quoteTarget(req.GetRequest(), req.GetRequestType())
	if err != nil {
		return nil, err
	}

	quote, err := h.svc.GetPaymentQuote(
		ctx, target, req.GetUnit(), parseMeltOptions(req.GetMeltOptions()),
	)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.GetPaymentQuoteResponse{
		Identifier:   toPaymentIdentifierProto(quote.Identifier),
		Amount:       quote.Amount,
		Fee:          quote.Fee,
		State:        toQuoteStateProto(quote.State),
		Unit:         quote.Unit,
		QuoteOptions: toMeltOptionsProto(quote.MeltOptions),
	}, nil
}

func (h *paymentHandler) MakePayment(
	ctx context.Context, req *pb.MakePaymentRequest,
) (*pb.MakePaymentResponse, error) {
	target, err := parseTarget(req.GetTarget())
	if err != nil {
		return nil, err
	}

	result, err := h.svc.MakePayment(
		ctx, target, req.GetPartialAmount(), req.GetMaxFeeAmount(),
	)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toPaymentResultProto(result), nil
}

func (h *paymentHandler) CheckIncomingPayment(
	ctx context.Context, req *pb.CheckIncomingPaymentRequest,
) (*pb.CheckIncomingPaymentResponse, error) {
	id, err := parsePaymentIdentifier(req.GetIdentifier())
	if err != nil {
		return nil, err
	}

	notifications, err := h.svc.CheckIncomingPayment(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}

	payments := make([]*pb.IncomingNotification, 0, len(notifications))
	for _, notification := range notifications {
		payments = append(payments, toNotificationProto(notification))
	}
	return &pb.CheckIncomingPaymentResponse{Payments: payments}, nil
}

func (h *paymentHandler) CheckOutgoingPayment(
	ctx context.Context, req *pb.CheckOutgoingPaymentRequest,
) (*pb.MakePaymentResponse, error) {
	id, err := parsePaymentIdentifier(req.GetIdentifier())
	if err != nil {
		return nil, err
	}

	result, err := h.svc.CheckOutgoingPayment(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toPaymentResultProto(result), nil
}

func (h *paymentHandler) WaitIncomingPayment(
	req *pb.WaitIncomingPaymentRequest, stream pb.PaymentProcessor_WaitIncomingPaymentServer,
) error {
	ch, detach, err := h.svc.SubscribeIncoming(stream.Context())
	if err != nil {
		return toStatusError(err)
	}
	defer detach()

	for notification := range ch {
		if err := stream.Send(toNotificationProto(notification)); err != nil {
			return err
		}
	}
	return nil
}

func parsePaymentIdentifier(proto *pb.PaymentIdentifier) (domain.PaymentIdentifier, error) {
	if proto == nil {
		return domain.PaymentIdentifier{}, status.Error(
			codes.InvalidArgument, "missing payment identifier",
		)
	}
	var kind domain.IdentifierKind
	switch proto.GetKind() {
	case pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_PAYMENT_HASH:
		kind = domain.KindPaymentHash
	case pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_OFFER_ID:
		kind = domain.KindOfferId
	case pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_LABEL:
		kind = domain.KindLabel
	case pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_BOLT12_PAYMENT_HASH:
		kind = domain.KindBolt12PaymentHash
	case pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_CUSTOM_ID:
		kind = domain.KindCustomId
	default:
		return domain.PaymentIdentifier{}, status.Error(
			codes.InvalidArgument, "missing payment identifier kind",
		)
	}

	value := proto.GetHash()
	if len(value) <= 0 {
		value = proto.GetCustomId()
	}
	id, err := domain.NewPaymentIdentifier(kind, value)
	if err != nil {
		return domain.PaymentIdentifier{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return id, nil
}

func toPaymentIdentifierProto(id domain.PaymentIdentifier) *pb.PaymentIdentifier {
	proto := &pb.PaymentIdentifier{Kind: toIdentifierKindProto(id.Kind)}
	if id.IsHash() {
		proto.Id = &pb.PaymentIdentifier_Hash{Hash: id.Value}
	} else {
		proto.Id = &pb.PaymentIdentifier_CustomId{CustomId: id.Value}
	}
	return proto
}

func toIdentifierKindProto(kind domain.IdentifierKind) pb.PaymentIdentifierKind {
	switch kind {
	case domain.KindPaymentHash:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_PAYMENT_HASH
	case domain.KindOfferId:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_OFFER_ID
	case domain.KindLabel:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_LABEL
	case domain.KindBolt12PaymentHash:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_BOLT12_PAYMENT_HASH
	case domain.KindCustomId:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_CUSTOM_ID
	default:
		return pb.PaymentIdentifierKind_PAYMENT_IDENTIFIER_KIND_UNSPECIFIED
	}
}

func toQuoteStateProto(state domain.QuoteState) pb.QuoteState {
	switch state {
	case domain.StateUnpaid:
		return pb.QuoteState_QUOTE_STATE_UNPAID
	case domain.StatePaid:
		return pb.QuoteState_QUOTE_STATE_PAID
	case domain.StatePending:
		return pb.QuoteState_QUOTE_STATE_PENDING
	case domain.StateUnknown:
		return pb.QuoteState_QUOTE_STATE_UNKNOWN
	case domain.StateFailed:
		return pb.QuoteState_QUOTE_STATE_FAILED
	case domain.StateIssued:
		return pb.QuoteState_QUOTE_STATE_ISSUED
	default:
		return pb.QuoteState_QUOTE_STATE_UNSPECIFIED
	}
}

func parseIncomingOptions(proto *pb.IncomingPaymentOptions) (domain.IncomingPaymentOptions, error) {
	if proto == nil {
		return domain.IncomingPaymentOptions{}, status.Error(
			codes.InvalidArgument, "missing payment options",
		)
	}
	var opts domain.IncomingPaymentOptions
	if bolt11 := proto.GetBolt11(); bolt11 != nil {
		opts.Bolt11 = &domain.Bolt11IncomingOptions{
			Description: bolt11.GetDescription(),
			Amount:      bolt11.GetAmount(),
			Expiry:      parseExpiry(bolt11.GetExpiryUnix()),
		}
	}
	if bolt12 := proto.GetBolt12(); bolt12 != nil {
		opts.Bolt12 = &domain.Bolt12IncomingOptions{
			Description: bolt12.GetDescription(),
			Amount:      bolt12.GetAmount(),
			Expiry:      parseExpiry(bolt12.GetExpiryUnix()),
		}
	}
	if err := opts.Validate(); err != nil {
		return domain.IncomingPaymentOptions{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return opts, nil
}

func parseExpiry(unix uint64) *time.Time {
	if unix == 0 {
		return nil
	}
	t := time.Unix(int64(unix), 0)
	return &t
}

func parseMeltOptions(proto *pb.MeltOptions) *domain.MeltOptions {
	if proto == nil {
		return nil
	}
	opts := &domain.MeltOptions{}
	if mpp := proto.GetMpp(); mpp != nil {
		opts.Mpp = &domain.MppOptions{Amount: mpp.GetAmount()}
	}
	if amountless := proto.GetAmountless(); amountless != nil {
		opts.Amountless = &domain.AmountlessOptions{AmountMsat: amountless.GetAmountMsat()}
	}
	return opts
}

func toMeltOptionsProto(opts *domain.MeltOptions) *pb.MeltOptions {
	if opts == nil {
		return nil
	}
	proto := &pb.MeltOptions{}
	if opts.Mpp != nil {
		proto.Options = &pb.MeltOptions_Mpp{Mpp: &pb.MppOptions{Amount: opts.Mpp.Amount}}
	}
	if opts.Amountless != nil {
		proto.Options = &pb.MeltOptions_Amountless{
			Amountless: &pb.AmountlessOptions{AmountMsat: opts.Amountless.AmountMsat},
		}
	}
	return proto
}

func quoteTarget(
	request string, requestType pb.PaymentRequestType,
) (domain.OutgoingPaymentTarget, error) {
	switch requestType {
	case pb.PaymentRequestType_PAYMENT_REQUEST_TYPE_BOLT12_OFFER:
		return domain.OutgoingPaymentTarget{
			Bolt12: &domain.Bolt12OutgoingTarget{Offer: request},
		}, nil
	case pb.PaymentRequestType_PAYMENT_REQUEST_TYPE_BOLT11_INVOICE,
		pb.PaymentRequestType_PAYMENT_REQUEST_TYPE_UNSPECIFIED:
		return domain.OutgoingPaymentTarget{
			Bolt11: &domain.Bolt11OutgoingTarget{Request: request},
		}, nil
	default:
		return domain.OutgoingPaymentTarget{}, status.Error(
			codes.InvalidArgument, "unknown payment request type",
		)
	}
}

func parseTarget(proto *pb.OutgoingPaymentTarget) (domain.OutgoingPaymentTarget, error) {
	if proto == nil {
		return domain.OutgoingPaymentTarget{}, status.Error(
			codes.InvalidArgument, "missing payment target",
		)
	}
	var target domain.OutgoingPaymentTarget
	if bolt11 := proto.GetBolt11(); bolt11 != nil {
		target.Bolt11 = &domain.Bolt11OutgoingTarget{
			Request:     bolt11.GetRequest(),
			MaxFee:      bolt11.GetMaxFee(),
			Timeout:     time.Duration(bolt11.GetTimeoutSeconds()) * time.Second,
			MeltOptions: parseMeltOptions(bolt11.GetMeltOptions()),
		}
	}
	if bolt12 := proto.GetBolt12(); bolt12 != nil {
		target.Bolt12 = &domain.Bolt12OutgoingTarget{
			Offer:       bolt12.GetOffer(),
			MaxFee:      bolt12.GetMaxFee(),
			Timeout:     time.Duration(bolt12.GetTimeoutSeconds()) * time.Second,
			Invoice:     bolt12.GetInvoice(),
			MeltOptions: parseMeltOptions(bolt12.GetMeltOptions()),
		}
	}
	if err := target.Validate(); err != nil {
		return domain.OutgoingPaymentTarget{}, status.Error(codes.InvalidArgument, err.Error())
	}
	return target, nil
}

func toPaymentResultProto(result *domain.PaymentResult) *pb.MakePaymentResponse {
	return &pb.MakePaymentResponse{
		Identifier:   toPaymentIdentifierProto(result.Identifier),
		PaymentProof: result.Proof,
		State:        toQuoteStateProto(result.Status),
		TotalSpent:   result.TotalSpent,
		Unit:         result.Unit,
	}
}

func toNotificationProto(notification domain.IncomingNotification) *pb.IncomingNotification {
	return &pb.IncomingNotification{
		Identifier: toPaymentIdentifierProto(notification.Identifier),
		Amount:     notification.Amount,
		Unit:       notification.Unit,
		PaymentId:  notification.PaymentId,
	}
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrConflictingOptions),
		errors.Is(err, domain.ErrAmountMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUnsupportedMethod):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, domain.ErrFeeExceeded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrPaymentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnroutablePayment),
		errors.Is(err, domain.ErrBackendUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return err
	}
}
