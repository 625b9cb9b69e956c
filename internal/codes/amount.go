package codes

import "strconv"

// AmountKind distinguishes balance status amounts from credit and debit
// summary amounts.
type AmountKind string

const (
	KindStatus        AmountKind = "status"
	KindCreditSummary AmountKind = "credit_summary"
	KindDebitSummary  AmountKind = "debit_summary"
	KindUnknown       AmountKind = "unknown"
)

// AmountClass is the classification of an account or group amount type code.
type AmountClass struct {
	Kind     AmountKind
	Category string
}

// LookupAmount classifies a balance/summary amount type code. The custom
// ranges are 900-919 (status), 920-959 (credit summary) and 960-999 (debit
// summary).
func LookupAmount(code string) AmountClass {
	if c, ok := amountTable[code]; ok {
		return c
	}
	if n, err := strconv.Atoi(code); err == nil {
		switch {
		case n >= 900 && n <= 919:
			return AmountClass{KindStatus, "custom_status"}
		case n >= 920 && n <= 959:
			return AmountClass{KindCreditSummary, "custom_credit_summary"}
		case n >= 960 && n <= 999:
			return AmountClass{KindDebitSummary, "custom_debit_summary"}
		}
	}
	return AmountClass{KindUnknown, CategoryUnknown}
}

var amountTable = map[string]AmountClass{
	"010": {KindStatus, "opening_ledger"},
	"011": {KindStatus, "average_opening_ledger_mtd"},
	"012": {KindStatus, "average_opening_ledger_ytd"},
	"015": {KindStatus, "closing_ledger"},
	"020": {KindStatus, "average_closing_ledger_mtd"},
	"021": {KindStatus, "average_closing_ledger_previous_month"},
	"022": {KindStatus, "aggregate_balance_adjustments"},
	"024": {KindStatus, "average_closing_ledger_ytd_previous_month"},
	"025": {KindStatus, "average_closing_ledger_ytd"},
	"030": {KindStatus, "current_ledger"},
	"037": {KindStatus, "ach_net_position"},
	"039": {KindStatus, "opening_available_and_total_same_day_ach_dtc_deposit"},
	"040": {KindStatus, "opening_available"},
	"041": {KindStatus, "average_opening_available_mtd"},
	"042": {KindStatus, "average_opening_available_ytd"},
	"043": {KindStatus, "average_available_previous_month"},
	"044": {KindStatus, "disbursing_opening_available_balance"},
	"045": {KindStatus, "closing_available"},
	"050": {KindStatus, "average_closing_available_mtd"},
	"051": {KindStatus, "average_closing_available_last_month"},
	"054": {KindStatus, "average_closing_available_ytd_last_month"},
	"055": {KindStatus, "average_closing_available_ytd"},
	"056": {KindStatus, "loan_balance"},
	"057": {KindStatus, "total_investment_position"},
	"059": {KindStatus, "current_available_crs_supressed"},
	"060": {KindStatus, "current_available"},
	"061": {KindStatus, "average_current_available_mtd"},
	"062": {KindStatus, "average_current_available_ytd"},
	"063": {KindStatus, "total_float"},
	"065": {KindStatus, "target_balance"},
	"066": {KindStatus, "adjusted_balance"},
	"067": {KindStatus, "adjusted_balance_mtd"},
	"068": {KindStatus, "adjusted_balance_ytd"},
	"070": {KindStatus, "zero_day_float"},
	"072": {KindStatus, "one_day_float"},
	"073": {KindStatus, "float_adjustment"},
	"074": {KindStatus, "two_or_more_days_float"},
	"075": {KindStatus, "three_or_more_days_float"},
	"076": {KindStatus, "adjustment_to_balances"},
	"077": {KindStatus, "average_adjustment_to_balances_mtd"},
	"078": {KindStatus, "average_adjustment_to_balances_ytd"},
	"079": {KindStatus, "four_day_float"},
	"080": {KindStatus, "five_day_float"},
	"081": {KindStatus, "six_day_float"},
	"082": {KindStatus, "average1_day_float_mtd"},
	"083": {KindStatus, "average1_day_float_ytd"},
	"084": {KindStatus, "average2_day_float_mtd"},
	"085": {KindStatus, "average2_day_float_ytd"},
	"086": {KindStatus, "transfer_calculation"},
	"100": {KindCreditSummary, "total_credits"},
	"101": {KindCreditSummary, "total_credit_amount_mtd"},
	"105": {KindCreditSummary, "credits_not_detailed"},
	"106": {KindCreditSummary, "deposits_subject_to_float"},
	"107": {KindCreditSummary, "total_adjustment_credits_ytd"},
	"109": {KindCreditSummary, "current_day_total_lockbox_deposits"},
	"110": {KindCreditSummary, "total_lockbox_deposits"},
	"120": {KindCreditSummary, "edi_transaction_credit"},
	"130": {KindCreditSummary, "total_concentration_credits"},
	"131": {KindCreditSummary, "total_dtc_credits"},
	"140": {KindCreditSummary, "total_ach_credits"},
	"146": {KindCreditSummary, "total_bank_card_deposits"},
	"150": {KindCreditSummary, "total_preauthorized_payment_credits"},
	"160": {KindCreditSummary, "total_ach_disbursing_funding_credits"},
	"162": {KindCreditSummary, "corporate_trade_payment_settlement"},
	"163": {KindCreditSummary, "corporate_trade_payment_credits"},
	"167": {KindCreditSummary, "ach_settlement_credits"},
	"170": {KindCreditSummary, "total_other_check_deposits"},
	"178": {KindCreditSummary, "list_post_credits"},
	"180": {KindCreditSummary, "total_loan_proceeds"},
	"182": {KindCreditSummary, "total_bank_prepared_deposits"},
	"185": {KindCreditSummary, "total_miscellaneous_deposits"},
	"186": {KindCreditSummary, "total_cash_letter_credits"},
	"188": {KindCreditSummary, "total_cash_letter_adjustments"},
	"190": {KindCreditSummary, "total_incoming_money_transfers"},
	"200": {KindCreditSummary, "total_automatic_transfer_credits"},
	"205": {KindCreditSummary, "total_book_transfer_credits"},
	"207": {KindCreditSummary, "total_international_money_transfer_credits"},
	"210": {KindCreditSummary, "total_international_credits"},
	"215": {KindCreditSummary, "total_letters_of_credit"},
	"230": {KindCreditSummary, "total_security_credits"},
	"231": {KindCreditSummary, "total_collection_credits"},
	"239": {KindCreditSummary, "total_bankers_acceptance_credits"},
	"245": {KindCreditSummary, "monthly_dividends"},
	"250": {KindCreditSummary, "total_checks_posted_and_returned"},
	"251": {KindCreditSummary, "total_debit_reversals"},
	"256": {KindCreditSummary, "total_ach_return_items"},
	"260": {KindCreditSummary, "total_rejected_credits"},
	"270": {KindCreditSummary, "total_zba_credits"},
	"271": {KindCreditSummary, "net_zero_balance_amount"},
	"280": {KindCreditSummary, "total_controlled_disbursing_credits"},
	"285": {KindCreditSummary, "total_dtc_disbursing_credits"},
	"294": {KindCreditSummary, "total_atm_credits"},
	"302": {KindCreditSummary, "correspondent_bank_deposit"},
	"303": {KindCreditSummary, "total_wire_transfers_in_f_f"},
	"304": {KindCreditSummary, "total_wire_transfers_in_c_h_f"},
	"305": {KindCreditSummary, "total_fed_funds_sold"},
	"307": {KindCreditSummary, "total_trust_credits"},
	"309": {KindCreditSummary, "total_value_dated_funds"},
	"310": {KindCreditSummary, "total_commercial_deposits"},
	"315": {KindCreditSummary, "total_international_credits_ff"},
	"316": {KindCreditSummary, "total_international_credits_chf"},
	"318": {KindCreditSummary, "total_foreign_check_purchased"},
	"319": {KindCreditSummary, "late_deposit"},
	"320": {KindCreditSummary, "total_securities_sold_ff"},
	"321": {KindCreditSummary, "total_securities_sold_chf"},
	"324": {KindCreditSummary, "total_securities_matured_ff"},
	"325": {KindCreditSummary, "total_securities_matured_chf"},
	"326": {KindCreditSummary, "total_securities_interest"},
	"327": {KindCreditSummary, "total_securities_matured"},
	"328": {KindCreditSummary, "total_securities_interest_ff"},
	"329": {KindCreditSummary, "total_securities_interest_chf"},
	"330": {KindCreditSummary, "total_escrow_credits"},
	"332": {KindCreditSummary, "total_miscellaneous_securities_credits_ff"},
	"336": {KindCreditSummary, "total_miscellaneous_securities_credits_chf"},
	"338": {KindCreditSummary, "total_securities_sold"},
	"340": {KindCreditSummary, "total_broker_deposits"},
	"341": {KindCreditSummary, "total_broker_deposits_ff"},
	"343": {KindCreditSummary, "total_broker_deposits_chf"},
	"350": {KindCreditSummary, "investment_sold"},
	"352": {KindCreditSummary, "total_cash_center_credits"},
	"355": {KindCreditSummary, "investment_interest"},
	"356": {KindCreditSummary, "total_credit_adjustment"},
	"360": {KindCreditSummary, "total_credits_less_wire_transfer_and_returned_checks"},
	"361": {KindCreditSummary, "grand_total_credits_less_grand_total_debits"},
	"370": {KindCreditSummary, "total_back_value_credits"},
	"385": {KindCreditSummary, "total_universal_credits"},
	"389": {KindCreditSummary, "total_freight_payment_credits"},
	"390": {KindCreditSummary, "total_miscellaneous_credits"},
	"400": {KindDebitSummary, "total_debits"},
	"401": {KindDebitSummary, "total_debit_amount_mtd"},
	"403": {KindDebitSummary, "todays_total_debits"},
	"405": {KindDebitSummary, "total_debit_less_wire_transfers_and_charge_backs"},
	"406": {KindDebitSummary, "debits_not_detailed"},
	"410": {KindDebitSummary, "total_ytd_adjustment"},
	"412": {KindDebitSummary, "total_debits_excluding_returned_items"},
	"416": {KindDebitSummary, "total_lockbox_debits"},
	"420": {KindDebitSummary, "edi_transaction_debits"},
	"430": {KindDebitSummary, "total_payable_through_drafts"},
	"446": {KindDebitSummary, "total_ach_disbursement_funding_debits"},
	"450": {KindDebitSummary, "total_ach_debits"},
	"463": {KindDebitSummary, "corporate_trade_payment_debits"},
	"465": {KindDebitSummary, "corporate_trade_payment_settlement"},
	"467": {KindDebitSummary, "ach_settlement_debits"},
	"470": {KindDebitSummary, "total_check_paid"},
	"471": {KindDebitSummary, "total_check_paid_cumulative_mtd"},
	"478": {KindDebitSummary, "list_post_debits"},
	"480": {KindDebitSummary, "total_loan_payments"},
	"482": {KindDebitSummary, "total_bank_originated_debits"},
	"486": {KindDebitSummary, "total_cash_letter_debits"},
	"490": {KindDebitSummary, "total_outgoing_money_transfers"},
	"500": {KindDebitSummary, "total_automatic_transfer_debits"},
	"505": {KindDebitSummary, "total_book_transfer_debits"},
	"507": {KindDebitSummary, "total_international_money_transfer_debits"},
	"510": {KindDebitSummary, "total_international_debits"},
	"515": {KindDebitSummary, "total_letters_of_credit"},
	"530": {KindDebitSummary, "total_security_debits"},
	"532": {KindDebitSummary, "total_amount_of_securities_purchased"},
	"534": {KindDebitSummary, "total_miscellaneous_securities_db_ff"},
	"536": {KindDebitSummary, "total_miscellaneous_securities_debit_chf"},
	"537": {KindDebitSummary, "total_collection_debit"},
	"539": {KindDebitSummary, "total_bankers_acceptances_debit"},
	"550": {KindDebitSummary, "total_deposited_items_returned"},
	"551": {KindDebitSummary, "total_credit_reversals"},
	"556": {KindDebitSummary, "total_ach_return_items"},
	"560": {KindDebitSummary, "total_rejected_debits"},
	"570": {KindDebitSummary, "total_zba_debits"},
	"580": {KindDebitSummary, "total_controlled_disbursing_debits"},
	"583": {KindDebitSummary, "total_disbursing_checks_paid_early_amount"},
	"584": {KindDebitSummary, "total_disbursing_checks_paid_later_amount"},
	"585": {KindDebitSummary, "disbursing_funding_requirement"},
	"586": {KindDebitSummary, "frb_presentment_estimate"},
	"587": {KindDebitSummary, "late_debits_after_notification"},
	"588": {KindDebitSummary, "total_disbursing_checks_paid_last_amount"},
	"590": {KindDebitSummary, "total_dtc_debits"},
	"594": {KindDebitSummary, "total_atm_debits"},
	"596": {KindDebitSummary, "total_apr_debits"},
	"601": {KindDebitSummary, "estimated_total_disbursement"},
	"602": {KindDebitSummary, "adjusted_total_disbursement"},
	"610": {KindDebitSummary, "total_funds_required"},
	"611": {KindDebitSummary, "total_wire_transfers_out_chf"},
	"612": {KindDebitSummary, "total_wire_transfers_out_ff"},
	"613": {KindDebitSummary, "total_international_debit_chf"},
	"614": {KindDebitSummary, "total_international_debit_ff"},
	"615": {KindDebitSummary, "total_federal_reserve_bank_commercial_bank_debit"},
	"617": {KindDebitSummary, "total_securities_purchased_chf"},
	"618": {KindDebitSummary, "total_securities_purchased_ff"},
	"621": {KindDebitSummary, "total_broker_debits_chf"},
	"623": {KindDebitSummary, "total_broker_debits_ff"},
	"625": {KindDebitSummary, "total_broker_debits"},
	"626": {KindDebitSummary, "total_fed_funds_purchased"},
	"628": {KindDebitSummary, "total_cash_center_debits"},
	"630": {KindDebitSummary, "total_debit_adjustments"},
	"632": {KindDebitSummary, "total_trust_debits"},
	"640": {KindDebitSummary, "total_escrow_debits"},
	"646": {KindDebitSummary, "transfer_calculation_debit"},
	"650": {KindDebitSummary, "investments_purchased"},
	"655": {KindDebitSummary, "total_investment_interest_debits"},
	"665": {KindDebitSummary, "intercept_debits"},
	"670": {KindDebitSummary, "total_back_value_debits"},
	"685": {KindDebitSummary, "total_universal_debits"},
	"689": {KindDebitSummary, "frb_freight_payment_debits"},
	"690": {KindDebitSummary, "total_miscellaneous_debits"},
	"701": {KindStatus, "principal_loan_balance"},
	"703": {KindStatus, "available_commitment_amount"},
	"705": {KindStatus, "payment_amount_due"},
	"707": {KindStatus, "principal_amount_past_due"},
	"709": {KindStatus, "interest_amount_past_due"},
	"720": {KindCreditSummary, "total_loan_payment"},
	"760": {KindDebitSummary, "loan_disbursement"},
}
