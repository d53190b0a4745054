package search

func renderScanModalAssets() string {
	return `<dialog id="scan-modal" class="scan-modal">
  <h3 class="h5">Scan Barcode</h3>
  <div id="scan-reader" class="scan-reader mt-3"></div>
  <p id="scan-status" class="mt-3 small text-muted">Camera idle</p>
  <button class="btn btn-secondary w-100" type="button" onclick="closeScanModal()">Close</button>
</dialog>
<script>
let scanTargetInput = null;
let quaggaRunning = false;
let onDetectedHandler = null;

function setScanStatus(msg) {
  const el = document.getElementById("scan-status");
  if (el) el.textContent = msg;
}

function loadQuaggaScript() {
  if (window.Quagga) return Promise.resolve();
  return new Promise((resolve, reject) => {
    const s = document.createElement("script");
    s.src = "https://cdn.jsdelivr.net/npm/@ericblade/quagga2@1.8.4/dist/quagga.min.js";
    s.onload = resolve;
    s.onerror = reject;
    document.head.appendChild(s);
  });
}

async function openScanModal(targetInputID) {
  scanTargetInput = document.getElementById(targetInputID);
  const modal = document.getElementById("scan-modal");
  if (!modal) return;
  modal.showModal();
  setScanStatus("Starting camera...");
  try {
    await startScanner();
  } catch (err) {
    setScanStatus("Camera failed: " + (err && err.message ? err.message : err));
  }
}

function closeScanModal() {
  stopScanner();
  const modal = document.getElementById("scan-modal");
  if (modal && modal.open) modal.close();
  setScanStatus("Camera idle");
}

async function startScanner() {
  if (quaggaRunning) return;
  await loadQuaggaScript();
  const target = document.getElementById("scan-reader");
  if (!target) throw new Error("scan target missing");

  await new Promise((resolve, reject) => {
    window.Quagga.init({
      inputStream: {
        type: "LiveStream",
        target: target,
        constraints: {
          facingMode: { ideal: "environment" }
        }
      },
      decoder: {
        readers: ["ean_reader", "upc_reader", "upc_e_reader", "ean_8_reader", "code_39_reader"]
      },
      locate: true
    }, (err) => {
      if (err) return reject(err);
      return resolve();
    });
  });

  if (onDetectedHandler) {
    window.Quagga.offDetected(onDetectedHandler);
  }

  onDetectedHandler = function(result) {
    const code = result && result.codeResult && result.codeResult.code;
    if (!code || !scanTargetInput) return;
    scanTargetInput.value = code;
    closeScanModal();
    submitScannedSearch();
  };
  window.Quagga.onDetected(onDetectedHandler);
  window.Quagga.start();
  quaggaRunning = true;
  setScanStatus("Point the camera at a barcode");
}

function stopScanner() {
  if (!window.Quagga || !quaggaRunning) return;
  if (onDetectedHandler) {
    window.Quagga.offDetected(onDetectedHandler);
  }
  window.Quagga.stop();
  quaggaRunning = false;
}

function submitScannedSearch() {
  const form = document.getElementById("search-form");
  if (!form) return;
  form.dataset.scanned = "1";
  form.requestSubmit();
}
</script>`
}
